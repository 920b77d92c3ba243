package handlers

import (
	"context"

	ticketdto "github.com/darna-inc/darna/internal/application/ticket/dto"
	"github.com/darna-inc/darna/internal/application/ticket/usecases"
)

// Use case interfaces for TicketHandler

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, ticketID uint) (*ticketdto.TicketDTO, error)
}

type updateTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error)
}
