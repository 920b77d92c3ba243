package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/application/ticket/dto"
	"github.com/darna-inc/darna/internal/domain/shared/events"
	"github.com/darna-inc/darna/internal/domain/ticket"
	vo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// UpdateTicketCommand carries a staff edit. Nil fields are left unchanged.
type UpdateTicketCommand struct {
	TicketID    uint
	ReplierID   uint
	Title       *string
	Description *string
	Answer      *string
	Status      *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	renderer   AnswerRenderer
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	renderer AnswerRenderer,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Answer != nil {
		html, err := uc.renderer.ToHTMLSanitized(*cmd.Answer)
		if err != nil {
			return nil, errors.NewValidationError("answer is not valid markdown", err.Error())
		}
		t.SetAnswer(*cmd.Answer, html)
	}
	if cmd.Status != nil {
		if err := t.ChangeStatus(vo.TicketStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	t.Reply(cmd.ReplierID)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "replier_id", cmd.ReplierID, "status", t.Status().String())

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewAnsweredEvent(t, cmd.Answer != nil)); err != nil {
			uc.logger.Warnw("failed to publish ticket event", "error", err, "ticket_id", t.ID())
		}
	}

	people, err := loadParticipants(ctx, uc.userRepo, t)
	if err != nil {
		uc.logger.Warnw("failed to load ticket participants", "error", err, "ticket_id", t.ID())
		people = nil
	}
	return dto.ToTicketDTO(t, people), nil
}
