package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/darna-inc/darna/internal/application/ticket/dto"
	"github.com/darna-inc/darna/internal/domain/ticket"
	vo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ListTicketsQuery struct {
	Query  string
	Status string
	UserID *uint
	Offset int
	Limit  int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, userRepo user.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Query:  strings.TrimSpace(query.Query),
		UserID: query.UserID,
		Offset: query.Offset,
		Limit:  query.Limit,
	}
	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid ticket status", query.Status)
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	people, err := loadParticipants(ctx, uc.userRepo, tickets...)
	if err != nil {
		uc.logger.Errorw("failed to load ticket participants", "error", err)
		return nil, fmt.Errorf("failed to load ticket participants: %w", err)
	}

	items := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketDTO(t, people))
	}
	return &ListTicketsResult{Tickets: items, Total: total}, nil
}
