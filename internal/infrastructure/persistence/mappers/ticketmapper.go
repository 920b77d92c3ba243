package mappers

import (
	"github.com/darna-inc/darna/internal/domain/ticket"
	vo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
)

type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.ReplierID,
		model.Title,
		model.Description,
		model.Answer,
		model.AnswerHTML,
		vo.TicketStatus(model.Status),
		model.AnsweredAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		ID:          entity.ID(),
		UserID:      entity.UserID(),
		ReplierID:   entity.ReplierID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Answer:      entity.Answer(),
		AnswerHTML:  entity.AnswerHTML(),
		Status:      entity.Status().String(),
		AnsweredAt:  entity.AnsweredAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}
