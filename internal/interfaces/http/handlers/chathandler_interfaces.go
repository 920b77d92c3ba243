package handlers

import (
	"context"

	chatdto "github.com/darna-inc/darna/internal/application/chat/dto"
	"github.com/darna-inc/darna/internal/application/chat/usecases"
)

// Use case interfaces for ChatHandler

type sendMessageUseCase interface {
	Execute(ctx context.Context, cmd usecases.SendMessageCommand) (*chatdto.MessageDTO, error)
}

type conversationUseCase interface {
	Execute(ctx context.Context, query usecases.ConversationQuery) ([]*chatdto.MessageDTO, error)
}

type inboxUseCase interface {
	Execute(ctx context.Context, query usecases.InboxQuery) ([]*chatdto.InboxEntryDTO, error)
}

type markReadUseCase interface {
	Execute(ctx context.Context, receiverID, senderID uint) (*chatdto.MarkReadResult, error)
}
