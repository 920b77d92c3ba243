package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/chat/dto"
	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/mapper"
)

type ConversationQuery struct {
	UserID  uint
	OtherID uint
	Offset  int
	Limit   int
}

type ConversationUseCase struct {
	messageRepo message.Repository
	logger      logger.Interface
}

func NewConversationUseCase(messageRepo message.Repository, logger logger.Interface) *ConversationUseCase {
	return &ConversationUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute returns messages in both directions between the two users, newest
// first.
func (uc *ConversationUseCase) Execute(ctx context.Context, query ConversationQuery) ([]*dto.MessageDTO, error) {
	messages, err := uc.messageRepo.Conversation(ctx, query.UserID, query.OtherID, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to load conversation", "error", err, "user_id", query.UserID, "other_id", query.OtherID)
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return mapper.MapSlice(messages, dto.ToMessageDTO), nil
}
