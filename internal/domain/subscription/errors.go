package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrActiveSubscriptionExists = errors.New("user already has an active subscription")
	ErrSubscriptionModified     = errors.New("subscription status changed concurrently")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidPeriod            = errors.New("subscription period must be at least one month")
	ErrPlanNotFound             = errors.New("subscription plan not found")
	ErrPlanInUse                = errors.New("subscription plan is referenced by subscriptions")
	ErrInvalidPrice             = errors.New("plan price cannot be negative")
	ErrInvalidMaxProperties     = errors.New("plan max_properties must be at least 1")
	ErrPlanNameRequired         = errors.New("plan name is required")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
