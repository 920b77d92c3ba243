package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/application/ticket/usecases"
	ticketvo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type TicketHandler struct {
	createUC createTicketUseCase
	listUC   listTicketsUseCase
	getUC    getTicketUseCase
	updateUC updateTicketUseCase
	logger   logger.Interface
}

func NewTicketHandler(
	createUC createTicketUseCase,
	listUC listTicketsUseCase,
	getUC getTicketUseCase,
	updateUC updateTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}

type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Answer      *string `json:"answer" binding:"omitempty,max=10000"`
	Status      *string `json:"status" binding:"omitempty,oneof=open answered closed"`
}

// ListTicketsRequest: staff may filter freely; other callers get the FAQ
// (answered tickets) or, with mine=true, their own tickets.
type ListTicketsRequest struct {
	Query  string `form:"query"`
	Status string `form:"status" binding:"omitempty,oneof=open answered closed"`
	UserID *uint  `form:"user_id"`
	Mine   bool   `form:"mine"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err, "user_id", who.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		UserID:      who.ID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ListTicketsRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		Query:  req.Query,
		Status: req.Status,
		UserID: req.UserID,
		Offset: p.Offset,
		Limit:  p.Limit,
	}
	switch {
	case req.Mine:
		query.UserID = &who.ID
	case !who.Role.IsPrivileged():
		query.UserID = nil
		query.Status = ticketvo.StatusAnswered.String()
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, p)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Other people's tickets are visible only once they are part of the FAQ.
	if !authorization.CanAccessResourceByOwnerID(who.ID, who.Role, result.UserID) &&
		result.Status != ticketvo.StatusAnswered.String() {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("ticket not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ReplierID:   who.ID,
		Title:       req.Title,
		Description: req.Description,
		Answer:      req.Answer,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}
