package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// UpdatePlanCommand is a partial update. Nil fields are left untouched.
type UpdatePlanCommand struct {
	ID            uint
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	MaxProperties *int
	// SetFeatures replaces the feature set with Features, which may be nil
	// to clear it.
	SetFeatures bool
	Features    []string
}

type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	if cmd.Name != nil {
		if err := plan.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError("invalid plan", err.Error())
		}
	}
	if cmd.Description != nil {
		plan.UpdateDescription(*cmd.Description)
	}
	if cmd.Price != nil {
		if err := plan.UpdatePrice(*cmd.Price); err != nil {
			return nil, errors.NewValidationError("invalid plan", err.Error())
		}
	}
	if cmd.MaxProperties != nil {
		if err := plan.UpdateMaxProperties(*cmd.MaxProperties); err != nil {
			return nil, errors.NewValidationError("invalid plan", err.Error())
		}
	}
	if cmd.SetFeatures {
		features, err := parseFeatures(cmd.Features)
		if err != nil {
			return nil, err
		}
		plan.SetFeatures(features)
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", plan.ID())
	return dto.ToPlanDTO(plan), nil
}
