package subscription

import (
	"context"
	"time"

	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
)

// PlanRepository persists the plan catalog. Getters return (nil, nil) when
// the row does not exist.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	// Delete returns ErrPlanInUse when subscriptions still reference the plan.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter PlanFilter) ([]*Plan, int64, error)
	// GetFreePlan returns the first plan priced at exactly zero.
	GetFreePlan(ctx context.Context) (*Plan, error)
}

type PlanFilter struct {
	Query  string
	Offset int
	Limit  int
}

// SubscriptionRepository persists the subscription ledger.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// Update persists status and payment details only while the stored row
	// still has status from. Otherwise it returns ErrSubscriptionModified.
	// Activating a subscription returns ErrActiveSubscriptionExists when the
	// user already has one.
	Update(ctx context.Context, subscription *Subscription, from vo.SubscriptionStatus) error
	// FindActiveByUserID returns the most recently created active subscription.
	FindActiveByUserID(ctx context.Context, userID uint) (*Subscription, error)
	// ClaimActive inserts an active subscription unless the user already has
	// one, in which case it returns ErrActiveSubscriptionExists.
	ClaimActive(ctx context.Context, subscription *Subscription) error
	// ExpireIfActive flips one subscription to expired only if it is still
	// active. Reports whether this call performed the transition.
	ExpireIfActive(ctx context.Context, id uint) (bool, error)
	// ExpirePaid expires every active subscription on a priced plan that
	// matches criteria, in one statement, and returns the affected row count.
	ExpirePaid(ctx context.Context, criteria SweepCriteria) (int64, error)
	List(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, int64, error)
	CountByPlanID(ctx context.Context, planID uint) (int64, error)
}

// SubscriptionFilter is a set of optional predicates. Nil fields are ignored.
type SubscriptionFilter struct {
	UserID        *uint
	PlanID        *uint
	Status        *vo.SubscriptionStatus
	PaymentMethod *vo.PaymentMethod
	StartFrom     *time.Time
	EndUntil      *time.Time
	// UserQuery matches the owner's full name, email or phone number.
	UserQuery string
	Offset    int
	Limit     int
}

// SweepCondition selects which end dates the sweeper treats as expired.
type SweepCondition string

const (
	// SweepPastDue expires subscriptions whose end date is at or before now.
	SweepPastDue SweepCondition = "past_due"
	// SweepLiteral expires subscriptions whose end date is at or after now.
	SweepLiteral SweepCondition = "literal"
)

func (c SweepCondition) IsValid() bool {
	return c == SweepPastDue || c == SweepLiteral
}

type SweepCriteria struct {
	Now       time.Time
	Condition SweepCondition
}
