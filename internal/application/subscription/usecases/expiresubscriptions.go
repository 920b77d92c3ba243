package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// SweepRecorder observes sweeper runs.
type SweepRecorder interface {
	RecordSweep(expired int64, err error)
}

// ExpireSubscriptionsUseCase expires active subscriptions on priced plans
// whose billing period matches the configured sweep condition. Free-tier
// subscriptions are never touched. It is the body of the daily sweep job.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	condition        subscription.SweepCondition
	now              func() time.Time
	recorder         SweepRecorder
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	condition subscription.SweepCondition,
	recorder SweepRecorder,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	if condition == "" {
		condition = subscription.SweepPastDue
	}
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		condition:        condition,
		now:              biztime.NowUTC,
		recorder:         recorder,
		logger:           logger,
	}
}

// WithClock replaces the wall clock, for tests.
func (uc *ExpireSubscriptionsUseCase) WithClock(now func() time.Time) *ExpireSubscriptionsUseCase {
	uc.now = now
	return uc
}

// Execute runs one sweep and returns the number of subscriptions expired.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.now()

	count, err := uc.subscriptionRepo.ExpirePaid(ctx, subscription.SweepCriteria{
		Now:       now,
		Condition: uc.condition,
	})
	if uc.recorder != nil {
		uc.recorder.RecordSweep(count, err)
	}
	if err != nil {
		uc.logger.Errorw("subscription sweep failed",
			"error", err,
			"condition", string(uc.condition),
		)
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}

	uc.logger.Infow("subscription sweep completed",
		"expired", count,
		"condition", string(uc.condition),
		"now", now,
	)

	return int(count), nil
}
