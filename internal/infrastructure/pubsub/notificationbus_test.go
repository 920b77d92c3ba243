package pubsub

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/shared/logger"
)

func TestRedisNotificationBus_CrossInstanceDelivery(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sender := NewRedisNotificationBus(client, "test:notifications", logger.NewNop())
	receiver := NewRedisNotificationBus(client, "test:notifications", logger.NewNop())
	require.NotEqual(t, sender.InstanceID(), receiver.InstanceID())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu       sync.Mutex
		received []NotificationEnvelope
		echoed   int
	)
	go func() {
		_ = receiver.Subscribe(ctx, func(env NotificationEnvelope) {
			mu.Lock()
			defer mu.Unlock()
			received = append(received, env)
		})
	}()
	go func() {
		_ = sender.Subscribe(ctx, func(NotificationEnvelope) {
			mu.Lock()
			defer mu.Unlock()
			echoed++
		})
	}()

	require.Eventually(t, func() bool {
		subs, err := client.PubSubNumSub(ctx, "test:notifications").Result()
		return err == nil && subs["test:notifications"] == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, sender.Publish(ctx, NotificationEnvelope{
		UserID: 7,
		Event:  "new_message",
		Data:   json.RawMessage(`{"id":1}`),
	}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, uint(7), received[0].UserID)
	assert.Equal(t, "new_message", received[0].Event)
	assert.JSONEq(t, `{"id":1}`, string(received[0].Data))
	assert.Equal(t, sender.InstanceID(), received[0].InstanceID)
	assert.NotZero(t, received[0].Timestamp)
	assert.Zero(t, echoed, "publisher must not receive its own envelopes")
}

func TestRedisNotificationBus_SubscribeStopsOnCancel(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	bus := NewRedisNotificationBus(client, "", logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bus.Subscribe(ctx, func(NotificationEnvelope) {}) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not return after cancel")
	}
}
