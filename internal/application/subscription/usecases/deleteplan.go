package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo         subscription.PlanRepository
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewDeletePlanUseCase(
	planRepo subscription.PlanRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return errors.NewNotFoundError("plan not found")
	}

	count, err := uc.subscriptionRepo.CountByPlanID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to count subscriptions", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to check plan usage: %w", err)
	}
	if count > 0 {
		return errors.NewConflictError(fmt.Sprintf("cannot delete plan: %d subscriptions are using this plan", count))
	}

	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		switch {
		case stderrors.Is(err, subscription.ErrPlanInUse):
			// A subscription was created between the count and the delete.
			return errors.NewConflictError("cannot delete plan: subscriptions are using this plan")
		case stderrors.Is(err, subscription.ErrPlanNotFound):
			return errors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}
