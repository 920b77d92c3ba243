package message

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, message *Message) error
	// Conversation returns messages exchanged between two users, newest first.
	Conversation(ctx context.Context, userID, otherID uint, offset, limit int) ([]*Message, error)
	// Inbox returns the latest message from each sender to receiverID,
	// newest conversation first.
	Inbox(ctx context.Context, receiverID uint, offset, limit int) ([]*InboxEntry, error)
	// MarkRead stamps unread messages from senderID to receiverID.
	MarkRead(ctx context.Context, senderID, receiverID uint, at time.Time) (int64, error)
}

type InboxEntry struct {
	Latest      *Message
	UnreadCount int64
}
