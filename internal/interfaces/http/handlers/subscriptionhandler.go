package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type SubscriptionHandler struct {
	createUC createSubscriptionUseCase
	updateUC updateSubscriptionUseCase
	listUC   listSubscriptionsUseCase
	getMyUC  getMySubscriptionUseCase
	logger   logger.Interface
}

func NewSubscriptionHandler(
	createUC createSubscriptionUseCase,
	updateUC updateSubscriptionUseCase,
	listUC listSubscriptionsUseCase,
	getMyUC getMySubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getMyUC:  getMyUC,
		logger:   logger,
	}
}

type CreateSubscriptionRequest struct {
	PlanID         uint       `json:"plan_id" binding:"required"`
	PaymentMethod  string     `json:"payment_method" binding:"required,payment_method"`
	PaymentDetails string     `json:"payment_details" binding:"omitempty,max=1000"`
	ProofOfPayment string     `json:"proof_of_payment" binding:"required,url"`
	Period         int        `json:"period" binding:"omitempty,min=1,max=36"`
	StartDate      *time.Time `json:"start_date"`
}

type UpdateSubscriptionRequest struct {
	PaymentDetails *string `json:"payment_details" binding:"omitempty,max=1000"`
	Status         *string `json:"status" binding:"omitempty,oneof=inactive active expired"`
}

// ListSubscriptionsRequest carries the optional list filters. Dates use
// YYYY-MM-DD.
type ListSubscriptionsRequest struct {
	Query         string     `form:"query"`
	UserID        *uint      `form:"user_id"`
	PlanID        *uint      `form:"plan_id"`
	Status        string     `form:"status" binding:"omitempty,oneof=inactive active expired"`
	PaymentMethod string     `form:"payment_method" binding:"omitempty,payment_method"`
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err, "user_id", who.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		UserID:         who.ID,
		PlanID:         req.PlanID,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		ProofOfPayment: req.ProofOfPayment,
		StartDate:      req.StartDate,
		PeriodMonths:   req.Period,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription request recorded")
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	subscriptionID, err := parseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSubscriptionCommand{
		ID:             subscriptionID,
		PaymentDetails: req.PaymentDetails,
		Status:         req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated successfully", result)
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	var req ListSubscriptionsRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	query := usecases.ListSubscriptionsQuery{
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		StartFrom:     req.StartDate,
		Query:         req.Query,
		Offset:        p.Offset,
		Limit:         p.Limit,
	}
	if req.EndDate != nil {
		// end_date is inclusive of the whole day.
		until := req.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		query.EndUntil = &until
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Subscriptions, result.Total, p)
}

func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getMyUC.Execute(c.Request.Context(), who.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
