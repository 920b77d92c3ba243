package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/ticket/dto"
	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, userRepo user.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	people, err := loadParticipants(ctx, uc.userRepo, t)
	if err != nil {
		uc.logger.Errorw("failed to load ticket participants", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to load ticket participants: %w", err)
	}

	return dto.ToTicketDTO(t, people), nil
}
