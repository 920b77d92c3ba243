package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	MaxProperties int
	// Features nil stores a plan without a feature set.
	Features []string
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	features, err := parseFeatures(cmd.Features)
	if err != nil {
		return nil, err
	}

	plan, err := subscription.NewPlan(cmd.Name, cmd.Description, cmd.Price, cmd.MaxProperties, features)
	if err != nil {
		return nil, errors.NewValidationError("invalid plan", err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created",
		"plan_id", plan.ID(),
		"name", plan.Name(),
		"price", plan.Price().String(),
	)

	return dto.ToPlanDTO(plan), nil
}

func parseFeatures(tags []string) (*vo.FeatureSet, error) {
	if tags == nil {
		return nil, nil
	}
	set, err := vo.NewFeatureSet(tags...)
	if err != nil {
		return nil, errors.NewValidationError("invalid features", err.Error())
	}
	return set, nil
}
