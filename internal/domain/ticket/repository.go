package ticket

import (
	"context"

	vo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	// Query matches title, description, answer and the author's name or email.
	Query  string
	Status *vo.TicketStatus
	UserID *uint
	Offset int
	Limit  int
}
