package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC createPlanUseCase
	updatePlanUC updatePlanUseCase
	listPlansUC  listPlansUseCase
	deletePlanUC deletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	listPlansUC listPlansUseCase,
	deletePlanUC deletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		logger:       logger,
	}
}

type CreatePlanRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	MaxProperties int             `json:"max_properties" binding:"omitempty,min=1"`
	Features      []string        `json:"features" binding:"omitempty,unique,dive,feature_tag"`
}

// optionalFeatures tells an absent "features" key apart from an explicit
// null, which clears the plan's feature set.
type optionalFeatures struct {
	Set    bool
	Values []string
}

func (f *optionalFeatures) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Values = nil
		return nil
	}
	return json.Unmarshal(data, &f.Values)
}

type UpdatePlanRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=100"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	MaxProperties *int             `json:"max_properties" binding:"omitempty,min=1"`
	Features      optionalFeatures `json:"features"`
}

type ListPlansRequest struct {
	Query string `form:"query"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxProperties := req.MaxProperties
	if maxProperties == 0 {
		maxProperties = 1
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		MaxProperties: maxProperties,
		Features:      req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := parseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		ID:            planID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		MaxProperties: req.MaxProperties,
		SetFeatures:   req.Features.Set,
		Features:      req.Features.Values,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	var req ListPlansRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansQuery{
		Query:  req.Query,
		Offset: p.Offset,
		Limit:  p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, p)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, err := parseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
