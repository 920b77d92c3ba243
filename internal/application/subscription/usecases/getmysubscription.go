package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// GetMySubscriptionUseCase returns the caller's gating subscription with
// its plan.
type GetMySubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewGetMySubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *GetMySubscriptionUseCase {
	return &GetMySubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *GetMySubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to find active subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("no active subscription")
	}

	plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", sub.PlanID())
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return dto.ToSubscriptionDTO(sub, plan, nil), nil
}
