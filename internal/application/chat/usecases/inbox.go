package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/chat/dto"
	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type InboxQuery struct {
	UserID uint
	Offset int
	Limit  int
}

// InboxUseCase lists the latest message from each sender to the caller.
type InboxUseCase struct {
	messageRepo message.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewInboxUseCase(messageRepo message.Repository, userRepo user.Repository, logger logger.Interface) *InboxUseCase {
	return &InboxUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *InboxUseCase) Execute(ctx context.Context, query InboxQuery) ([]*dto.InboxEntryDTO, error) {
	entries, err := uc.messageRepo.Inbox(ctx, query.UserID, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to load inbox", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}

	result := make([]*dto.InboxEntryDTO, 0, len(entries))
	if len(entries) == 0 {
		return result, nil
	}

	senderIDs := make([]uint, len(entries))
	for i, e := range entries {
		senderIDs[i] = e.Latest.SenderID()
	}
	senders, err := uc.userRepo.GetByIDs(ctx, senderIDs)
	if err != nil {
		uc.logger.Errorw("failed to load inbox senders", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to load inbox senders: %w", err)
	}
	byID := make(map[uint]*user.User, len(senders))
	for _, s := range senders {
		byID[s.ID()] = s
	}

	for _, e := range entries {
		result = append(result, &dto.InboxEntryDTO{
			Latest:      dto.ToMessageDTO(e.Latest),
			Sender:      dto.ToSenderDTO(byID[e.Latest.SenderID()]),
			UnreadCount: e.UnreadCount,
		})
	}
	return result, nil
}
