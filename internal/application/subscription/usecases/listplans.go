package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ListPlansQuery struct {
	Query  string
	Offset int
	Limit  int
}

type ListPlansResult struct {
	Plans []*dto.PlanDTO
	Total int64
}

type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*ListPlansResult, error) {
	plans, total, err := uc.planRepo.List(ctx, subscription.PlanFilter{
		Query:  query.Query,
		Offset: query.Offset,
		Limit:  query.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansResult{
		Plans: dto.ToPlanDTOList(plans),
		Total: total,
	}, nil
}
