package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"phonefinder-be/internal/entity"
	"phonefinder-be/pkg/llm"
)

// ErrChatTurn means a single exchange failed. The session recovers locally by
// appending a fallback model turn; it is never invalidated by a failed send.
var ErrChatTurn = errors.New("chat turn failed")

const (
	// Greeting seeds every new session as the model's first turn.
	Greeting = "Hi! I've analyzed your results. Got questions about these phones?"

	// FallbackReply is appended as the model's turn when a send fails, so the
	// conversation can continue normally afterwards.
	FallbackReply = "Sorry, I hit a snag — the advisor service had a hiccup. Please try again."
)

// Turn is one entry of the ordered conversation history.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Session is a turn-ordered dialogue scoped to exactly one recommendation
// snapshot. The briefing is fixed at open time; replacing the recommendation
// list means discarding the session, never mutating it.
type Session struct {
	provider llm.LLMProvider
	logger   *log.Logger
	briefing string

	mu    sync.Mutex
	turns []Turn
}

// Open creates a session seeded with a briefing over the given recommendations
// and the model greeting.
func Open(provider llm.LLMProvider, recs []entity.Recommendation, logger *log.Logger) *Session {
	return &Session{
		provider: provider,
		logger:   logger,
		briefing: buildBriefing(recs),
		turns:    []Turn{{Role: llm.RoleModel, Text: Greeting}},
	}
}

// Send appends the user's turn, awaits exactly one model reply and appends it.
// Sends are serialized: a concurrent call blocks until the outstanding one
// finishes, so turns never interleave.
func (s *Session) Send(ctx context.Context, userText string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, Turn{Role: llm.RoleUser, Text: userText})

	history := make([]llm.Message, 0, len(s.turns)+1)
	history = append(history, llm.Message{Role: llm.RoleSystem, Content: s.briefing})
	for _, turn := range s.turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Text})
	}

	reply, err := s.provider.Chat(ctx, history)
	if err != nil {
		s.logger.Printf("[WARN] chat turn failed: %v", err)
		s.turns = append(s.turns, Turn{Role: llm.RoleModel, Text: FallbackReply})
		return FallbackReply, fmt.Errorf("%w: %v", ErrChatTurn, err)
	}

	s.turns = append(s.turns, Turn{Role: llm.RoleModel, Text: reply})
	return reply, nil
}

// History returns a copy of the turn sequence in submission order.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Turn(nil), s.turns...)
}

// Briefing returns the immutable context summary the session was opened with.
func (s *Session) Briefing() string {
	return s.briefing
}

// buildBriefing concatenates a system-level summary of the recommendation set:
// per device the name, brand, rationale, pros, cons and retailer names.
func buildBriefing(recs []entity.Recommendation) string {
	var briefing strings.Builder

	briefing.WriteString("You are a helpful smartphone shopping assistant. ")
	briefing.WriteString("The user just received these recommendations; answer follow-up questions about them:\n\n")

	for i, rec := range recs {
		fmt.Fprintf(&briefing, "%d. %s by %s\n", i+1, rec.Name, rec.Brand)
		fmt.Fprintf(&briefing, "   Why: %s\n", rec.WhyThisPhone)
		if len(rec.Pros) > 0 {
			fmt.Fprintf(&briefing, "   Pros: %s\n", strings.Join(rec.Pros, "; "))
		}
		if len(rec.Cons) > 0 {
			fmt.Fprintf(&briefing, "   Cons: %s\n", strings.Join(rec.Cons, "; "))
		}
		if len(rec.AvailableRetailers) > 0 {
			names := make([]string, 0, len(rec.AvailableRetailers))
			for _, retailer := range rec.AvailableRetailers {
				names = append(names, retailer.Name)
			}
			fmt.Fprintf(&briefing, "   Retailers: %s\n", strings.Join(names, ", "))
		}
		briefing.WriteString("\n")
	}

	briefing.WriteString("Keep answers concise and grounded in the devices above.")
	return briefing.String()
}
