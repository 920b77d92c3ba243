// Package pubsub relays real-time events between API instances over Redis.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/goroutine"
	"github.com/darna-inc/darna/internal/shared/logger"
)

const DefaultNotificationChannel = "darna:notifications"

// NotificationEnvelope addresses one event to every connection of a user,
// wherever that connection lives.
type NotificationEnvelope struct {
	UserID     uint            `json:"user_id"`
	Event      string          `json:"event"`
	Data       json.RawMessage `json:"data"`
	Timestamp  int64           `json:"timestamp"`
	InstanceID string          `json:"instance_id"`
}

// RedisNotificationBus publishes envelopes on a single channel. Each instance
// delivers to its own connections before publishing, so envelopes that come
// back from this instance are dropped by Subscribe.
type RedisNotificationBus struct {
	client     *redis.Client
	channel    string
	instanceID string
	logger     logger.Interface
}

func NewRedisNotificationBus(client *redis.Client, channel string, logger logger.Interface) *RedisNotificationBus {
	if channel == "" {
		channel = DefaultNotificationChannel
	}
	return &RedisNotificationBus{
		client:     client,
		channel:    channel,
		instanceID: uuid.NewString(),
		logger:     logger,
	}
}

func (b *RedisNotificationBus) InstanceID() string {
	return b.instanceID
}

func (b *RedisNotificationBus) Publish(ctx context.Context, env NotificationEnvelope) error {
	if env.Timestamp == 0 {
		env.Timestamp = biztime.NowUTC().Unix()
	}
	env.InstanceID = b.instanceID

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal notification envelope: %w", err)
	}

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish notification",
			"user_id", env.UserID,
			"event", env.Event,
			"error", err,
		)
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Subscribe blocks until ctx is done, reconnecting with exponential backoff
// when the subscription drops.
func (b *RedisNotificationBus) Subscribe(ctx context.Context, handler func(NotificationEnvelope)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("notification subscription disconnected, reconnecting",
			"channel", b.channel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisNotificationBus) subscribe(ctx context.Context, handler func(NotificationEnvelope)) error {
	ps := b.client.Subscribe(ctx, b.channel)
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", b.channel, err)
	}

	b.logger.Infow("subscribed to notification channel", "channel", b.channel)

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var env NotificationEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				b.logger.Warnw("failed to unmarshal notification envelope", "error", err)
				continue
			}
			if env.InstanceID == b.instanceID {
				continue
			}

			goroutine.SafeGo(b.logger, "notification-handler", func() {
				handler(env)
			})
		}
	}
}
