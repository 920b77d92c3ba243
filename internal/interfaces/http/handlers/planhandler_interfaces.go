package handlers

import (
	"context"

	subdto "github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/application/subscription/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*subdto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*subdto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlansQuery) (*usecases.ListPlansResult, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, planID uint) error
}
