package service

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"phonefinder-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService consumes search events off the local bus for stats.
type IConsumerService interface {
	Consume(ctx context.Context) error
	SearchCount() uint64
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger

	searches atomic.Uint64
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sysLogger: sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) SearchCount() uint64 {
	return cs.searches.Load()
}

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Warn("consumer", "failed to decode search event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	cs.searches.Add(1)
	cs.sysLogger.Info("consumer", "search completed", map[string]interface{}{
		"event": payload,
		"total": cs.searches.Load(),
	})
}
