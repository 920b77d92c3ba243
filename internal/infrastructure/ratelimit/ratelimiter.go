// Package ratelimit bounds how often a key may perform an action.
package ratelimit

import (
	"context"
	"time"
)

// Limit allows Requests actions per sliding Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	// Allow records one attempt for key and reports whether it fits the limit.
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	// Remaining returns how many attempts key still has in the current window.
	Remaining(ctx context.Context, key string, limit Limit) (int64, error)
	Reset(ctx context.Context, key string) error
}
