// Package analytics holds the read model behind the dashboard counters.
package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidWindow = errors.New("start date must be before end date")

// Window is the interval (From, To]. A zero bound leaves that side open.
type Window struct {
	From time.Time
	To   time.Time
}

func NewWindow(from, to time.Time) (Window, error) {
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return Window{}, ErrInvalidWindow
	}
	return Window{From: from, To: to}, nil
}

func (w Window) Bounded() bool {
	return !w.From.IsZero() && !w.To.IsZero()
}

// Previous is the window of the same length that ends where w starts. It
// only exists for bounded windows.
func (w Window) Previous() (Window, bool) {
	if !w.Bounded() {
		return Window{}, false
	}
	length := w.To.Sub(w.From)
	return Window{From: w.From.Add(-length), To: w.From}, true
}

type TypeCount struct {
	PropertyTypeID uint
	Count          int64
}

type PropertyPoint struct {
	ID        uint
	CreatedAt time.Time
	Views     int
}

// SubscriptionPoint values a subscription at the current price of its plan.
type SubscriptionPoint struct {
	CreatedAt time.Time
	Amount    decimal.Decimal
}

// Repository computes aggregates over rows created inside a window.
type Repository interface {
	// CountOpenProperties counts listings still available. A nil ownerID counts every owner.
	CountOpenProperties(ctx context.Context, w Window, ownerID *uint) (int64, error)
	CountUnreadMessages(ctx context.Context, w Window, receiverID uint) (int64, error)
	CountPropertiesByType(ctx context.Context, w Window) ([]TypeCount, error)
	CountUsers(ctx context.Context, w Window) (int64, error)
	Properties(ctx context.Context, w Window) ([]PropertyPoint, error)
	Subscriptions(ctx context.Context, w Window) ([]SubscriptionPoint, error)
}
