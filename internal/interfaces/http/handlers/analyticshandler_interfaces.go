package handlers

import (
	"context"

	analyticsdto "github.com/darna-inc/darna/internal/application/analytics/dto"
	"github.com/darna-inc/darna/internal/application/analytics/usecases"
)

// Use case interfaces for AnalyticsHandler

type getDashboardUseCase interface {
	Execute(ctx context.Context, query usecases.DashboardQuery) (*analyticsdto.DashboardResponse, error)
}

type getGeneralStatsUseCase interface {
	Execute(ctx context.Context, query usecases.GeneralStatsQuery) (*analyticsdto.GeneralStatsResponse, error)
}
