package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	limit := Limit{Requests: 5, Window: time.Minute}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "signin:10.0.0.1", limit)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "signin:10.0.0.1", limit)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "signin:10.0.0.2", limit)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are independent")
}

func TestRedisRateLimiter_SlidingWindow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	limit := Limit{Requests: 2, Window: time.Minute}

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "k", limit)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	now = now.Add(61 * time.Second)
	allowed, err = limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_RemainingAndReset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	limit := Limit{Requests: 3, Window: time.Minute}

	remaining, err := limiter.Remaining(ctx, "k", limit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), remaining)

	_, err = limiter.Allow(ctx, "k", limit)
	require.NoError(t, err)
	remaining, err = limiter.Remaining(ctx, "k", limit)
	require.NoError(t, err)
	assert.Equal(t, int64(2), remaining)

	require.NoError(t, limiter.Reset(ctx, "k"))
	remaining, err = limiter.Remaining(ctx, "k", limit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), remaining)
}

func TestRedisRateLimiter_ZeroLimitAllowsEverything(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow(context.Background(), "k", Limit{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
