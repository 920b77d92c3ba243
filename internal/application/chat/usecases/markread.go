package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/darna-inc/darna/internal/application/chat/dto"
	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type MarkReadUseCase struct {
	messageRepo message.Repository
	now         func() time.Time
	logger      logger.Interface
}

func NewMarkReadUseCase(messageRepo message.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{
		messageRepo: messageRepo,
		now:         biztime.NowUTC,
		logger:      logger,
	}
}

// Execute stamps every unread message from senderID to receiverID.
func (uc *MarkReadUseCase) Execute(ctx context.Context, receiverID, senderID uint) (*dto.MarkReadResult, error) {
	at := uc.now()
	count, err := uc.messageRepo.MarkRead(ctx, senderID, receiverID, at)
	if err != nil {
		uc.logger.Errorw("failed to mark messages read", "error", err, "sender_id", senderID, "receiver_id", receiverID)
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return &dto.MarkReadResult{Count: count, ReadAt: at}, nil
}
