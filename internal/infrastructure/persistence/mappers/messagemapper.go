package mappers

import (
	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
)

type MessageMapper interface {
	ToEntity(model *models.MessageModel) (*message.Message, error)
	ToModel(entity *message.Message) *models.MessageModel
}

type messageMapper struct{}

func NewMessageMapper() MessageMapper {
	return &messageMapper{}
}

func (m *messageMapper) ToEntity(model *models.MessageModel) (*message.Message, error) {
	if model == nil {
		return nil, nil
	}
	return message.ReconstructMessage(model.ID, model.SenderID, model.ReceiverID, model.PropertyID,
		model.Content, model.SentAt, model.ReadAt)
}

func (m *messageMapper) ToModel(entity *message.Message) *models.MessageModel {
	if entity == nil {
		return nil
	}
	return &models.MessageModel{
		ID:         entity.ID(),
		SenderID:   entity.SenderID(),
		ReceiverID: entity.ReceiverID(),
		PropertyID: entity.PropertyID(),
		Content:    entity.Content(),
		SentAt:     entity.SentAt(),
		ReadAt:     entity.ReadAt(),
	}
}
