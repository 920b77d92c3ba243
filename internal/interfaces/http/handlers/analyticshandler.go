package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/application/analytics/usecases"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type AnalyticsHandler struct {
	dashboardUC getDashboardUseCase
	generalUC   getGeneralStatsUseCase
	logger      logger.Interface
}

func NewAnalyticsHandler(dashboardUC getDashboardUseCase, generalUC getGeneralStatsUseCase, logger logger.Interface) *AnalyticsHandler {
	return &AnalyticsHandler{
		dashboardUC: dashboardUC,
		generalUC:   generalUC,
		logger:      logger,
	}
}

// DashboardRequest takes RFC 3339 timestamps. Both bounds are optional.
type DashboardRequest struct {
	StartDate *time.Time `form:"start_date"`
	EndDate   *time.Time `form:"end_date"`
}

type GeneralStatsRequest struct {
	StartDate *time.Time `form:"start_date" binding:"required"`
	EndDate   *time.Time `form:"end_date" binding:"required"`
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DashboardRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.DashboardQuery{
		UserID: who.ID,
		Role:   who.Role,
		From:   req.StartDate,
		To:     req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AnalyticsHandler) GeneralStats(c *gin.Context) {
	var req GeneralStatsRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generalUC.Execute(c.Request.Context(), usecases.GeneralStatsQuery{
		From: *req.StartDate,
		To:   *req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
