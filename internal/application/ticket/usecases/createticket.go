package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/ticket/dto"
	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Title       string
	Description string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	t, err := ticket.NewTicket(cmd.UserID, cmd.Title, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "user_id", cmd.UserID)
	return dto.ToTicketDTO(t, nil), nil
}
