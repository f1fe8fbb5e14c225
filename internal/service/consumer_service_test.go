package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerCountsSearchEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewConsumerService(pubSub, "search.completed", nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Consume(ctx))

	for i := 0; i < 3; i++ {
		msg := message.NewMessage(watermill.NewUUID(), []byte(`{"mode": "EXPERT", "device_count": 4}`))
		require.NoError(t, pubSub.Publish("search.completed", msg))
	}

	assert.Eventually(t, func() bool {
		return svc.SearchCount() == 3
	}, time.Second, 10*time.Millisecond)
}

func TestConsumerSkipsUndecodableEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewConsumerService(pubSub, "search.completed", nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Consume(ctx))

	bad := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish("search.completed", bad))
	good := message.NewMessage(watermill.NewUUID(), []byte(`{"mode": "CASUAL"}`))
	require.NoError(t, pubSub.Publish("search.completed", good))

	assert.Eventually(t, func() bool {
		return svc.SearchCount() == 1
	}, time.Second, 10*time.Millisecond)
}
