package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/darna-inc/darna/internal/application/chat/dto"
	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Emitter pushes an event to every live connection of a user.
type Emitter interface {
	Emit(ctx context.Context, userID uint, event string, data any) error
}

// Sanitizer strips markup from user-authored text.
type Sanitizer interface {
	StripTags(text string) string
}

type SendMessageCommand struct {
	SenderID   uint
	ReceiverID uint
	PropertyID *uint
	Content    string
}

type SendMessageUseCase struct {
	messageRepo message.Repository
	userRepo    user.Repository
	sanitizer   Sanitizer
	emitter     Emitter
	logger      logger.Interface
}

func NewSendMessageUseCase(
	messageRepo message.Repository,
	userRepo user.Repository,
	sanitizer Sanitizer,
	emitter Emitter,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
		emitter:     emitter,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error) {
	receiver, err := uc.userRepo.GetByID(ctx, cmd.ReceiverID)
	if err != nil {
		uc.logger.Errorw("failed to get receiver", "error", err, "receiver_id", cmd.ReceiverID)
		return nil, fmt.Errorf("failed to get receiver: %w", err)
	}
	if receiver == nil {
		return nil, errors.NewNotFoundError("receiver not found")
	}

	m, err := message.NewMessage(cmd.SenderID, cmd.ReceiverID, cmd.PropertyID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	m.SanitizeContent(uc.sanitizer.StripTags)
	if strings.TrimSpace(m.Content()) == "" {
		return nil, errors.NewValidationError("message is required")
	}

	if err := uc.messageRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to store message", "error", err, "sender_id", cmd.SenderID)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	result := dto.ToMessageDTO(m)
	if err := uc.emitter.Emit(ctx, receiver.ID(), constants.EventNewMessage, result); err != nil {
		uc.logger.Warnw("failed to push message", "error", err, "message_id", m.ID(), "receiver_id", receiver.ID())
	}

	return result, nil
}
