package subscription

import (
	"fmt"
	"time"

	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
)

// Subscription is a time-boxed grant of a plan to a user.
type Subscription struct {
	id             uint
	userID         uint
	planID         uint
	status         vo.SubscriptionStatus
	startDate      time.Time
	endDate        time.Time
	paymentMethod  *vo.PaymentMethod
	paymentDetails string
	proofOfPayment string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewSubscriptionRequest creates an inactive subscription awaiting payment
// confirmation. The end date is periodMonths calendar months after startDate.
func NewSubscriptionRequest(userID, planID uint, method vo.PaymentMethod, paymentDetails, proofOfPayment string,
	startDate time.Time, periodMonths int) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}
	if periodMonths < 1 {
		return nil, ErrInvalidPeriod
	}

	now := time.Now().UTC()
	return &Subscription{
		userID:         userID,
		planID:         planID,
		status:         vo.StatusInactive,
		startDate:      startDate,
		endDate:        AddMonths(startDate, periodMonths),
		paymentMethod:  &method,
		paymentDetails: paymentDetails,
		proofOfPayment: proofOfPayment,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// NewFreeSubscription creates an already-active subscription to the free plan
// starting at now. It carries no payment data.
func NewFreeSubscription(userID, planID uint, now time.Time, periodMonths int) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if periodMonths < 1 {
		return nil, ErrInvalidPeriod
	}

	return &Subscription{
		userID:    userID,
		planID:    planID,
		status:    vo.StatusActive,
		startDate: now,
		endDate:   AddMonths(now, periodMonths),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, userID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	paymentMethod *vo.PaymentMethod,
	paymentDetails, proofOfPayment string,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:             id,
		userID:         userID,
		planID:         planID,
		status:         status,
		startDate:      startDate,
		endDate:        endDate,
		paymentMethod:  paymentMethod,
		paymentDetails: paymentDetails,
		proofOfPayment: proofOfPayment,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                         { return s.id }
func (s *Subscription) UserID() uint                     { return s.userID }
func (s *Subscription) PlanID() uint                     { return s.planID }
func (s *Subscription) Status() vo.SubscriptionStatus    { return s.status }
func (s *Subscription) StartDate() time.Time             { return s.startDate }
func (s *Subscription) EndDate() time.Time               { return s.endDate }
func (s *Subscription) PaymentMethod() *vo.PaymentMethod { return s.paymentMethod }
func (s *Subscription) PaymentDetails() string           { return s.paymentDetails }
func (s *Subscription) ProofOfPayment() string           { return s.proofOfPayment }
func (s *Subscription) CreatedAt() time.Time             { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time             { return s.updatedAt }
func (s *Subscription) IsActive() bool                   { return s.status == vo.StatusActive }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// TransitionTo moves the subscription to target if the lifecycle allows it.
func (s *Subscription) TransitionTo(target vo.SubscriptionStatus) error {
	if s.status == target {
		return nil
	}
	if !s.status.CanTransitionTo(target) {
		return ErrInvalidTransition(s.status.String(), target.String())
	}
	s.status = target
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Subscription) MarkAsExpired() error {
	return s.TransitionTo(vo.StatusExpired)
}

func (s *Subscription) UpdatePaymentDetails(details string) {
	s.paymentDetails = details
	s.updatedAt = time.Now().UTC()
}

// IsStaleAt is the gate-time freshness check: the subscription counts as
// expired once now shifted forward by lookaheadMonths reaches the end date.
func (s *Subscription) IsStaleAt(now time.Time, lookaheadMonths int) bool {
	return !AddMonths(now, lookaheadMonths).Before(s.endDate)
}

// IsPastDueAt reports whether the billing period has ended at now.
func (s *Subscription) IsPastDueAt(now time.Time) bool {
	return !now.Before(s.endDate)
}
