// Package notification tells users about staff activity on their tickets.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/darna-inc/darna/internal/domain/shared/events"
	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/logger"
)

const TypeTicketAnswered = "ticket_answered"

// Emitter pushes an event to every live connection of a user.
type Emitter interface {
	Emit(ctx context.Context, userID uint, event string, data any) error
}

type Mailer interface {
	SendTicketAnsweredEmail(to, recipientName, ticketTitle, answerHTML string) error
}

// Payload is the data of a new_notification event.
type Payload struct {
	Type      string    `json:"type"`
	TicketID  uint      `json:"ticket_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketAnsweredHandler delivers ticket.AnsweredEvent to the ticket author.
// The push always happens; the mail only when the answer changed.
type TicketAnsweredHandler struct {
	emitter  Emitter
	mailer   Mailer
	userRepo user.Repository
	timeout  time.Duration
	logger   logger.Interface
}

func NewTicketAnsweredHandler(emitter Emitter, mailer Mailer, userRepo user.Repository, logger logger.Interface) *TicketAnsweredHandler {
	return &TicketAnsweredHandler{
		emitter:  emitter,
		mailer:   mailer,
		userRepo: userRepo,
		timeout:  10 * time.Second,
		logger:   logger,
	}
}

// Register subscribes the handler on the dispatcher.
func (h *TicketAnsweredHandler) Register(sub events.EventSubscriber) error {
	return sub.Subscribe(ticket.EventTicketAnswered, h)
}

func (h *TicketAnsweredHandler) Handle(event events.DomainEvent) error {
	e, ok := event.(*ticket.AnsweredEvent)
	if !ok {
		return fmt.Errorf("unexpected event %T", event)
	}
	// Staff answering their own ticket need no notification.
	if e.UserID == e.ReplierID {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	payload := Payload{
		Type:      TypeTicketAnswered,
		TicketID:  e.TicketID,
		Title:     e.Title,
		Status:    e.Status,
		CreatedAt: e.GetOccurredAt(),
	}
	if err := h.emitter.Emit(ctx, e.UserID, constants.EventNewNotification, payload); err != nil {
		h.logger.Warnw("failed to push ticket notification", "error", err, "ticket_id", e.TicketID, "user_id", e.UserID)
	}

	if e.AnswerHTML == "" || h.mailer == nil {
		return nil
	}

	author, err := h.userRepo.GetByID(ctx, e.UserID)
	if err != nil {
		return fmt.Errorf("failed to load ticket author: %w", err)
	}
	if author == nil {
		return nil
	}
	if err := h.mailer.SendTicketAnsweredEmail(author.Email().String(), author.FullName(), e.Title, e.AnswerHTML); err != nil {
		return fmt.Errorf("failed to mail ticket author: %w", err)
	}

	h.logger.Infow("ticket author notified", "ticket_id", e.TicketID, "user_id", e.UserID)
	return nil
}
