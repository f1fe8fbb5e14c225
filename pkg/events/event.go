package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract for everything published on the analytics bus.
type Event interface {
	// EventID returns the unique id of this event instance, used as the
	// message id on every transport it is published to.
	EventID() string

	// EventType returns the code for this event (e.g., "SEARCH_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation events embed.
type BaseEvent struct {
	ID         string
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventID() string {
	return e.ID
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const TypeSearchCompleted = "SEARCH_COMPLETED"

// NewSearchCompleted records one finished recommendation search for the
// analytics consumers. It carries no user content, only aggregates.
func NewSearchCompleted(mode string, deviceCount int, topScore float64) Event {
	return BaseEvent{
		ID:   uuid.NewString(),
		Type: TypeSearchCompleted,
		Data: map[string]interface{}{
			"mode":         mode,
			"device_count": deviceCount,
			"top_score":    topScore,
		},
		OccurredAt: time.Now(),
	}
}
