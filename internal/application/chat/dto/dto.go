package dto

import (
	"time"

	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/domain/user"
)

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	PropertyID *uint  `json:"property_id"`
	Content    string `json:"content" binding:"required,max=5000"`
}

type MessageDTO struct {
	ID         uint       `json:"id"`
	SenderID   uint       `json:"sender_id"`
	ReceiverID uint       `json:"receiver_id"`
	PropertyID *uint      `json:"property_id"`
	Content    string     `json:"content"`
	SentAt     time.Time  `json:"sent_at"`
	ReadAt     *time.Time `json:"read_at"`
}

type SenderDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type InboxEntryDTO struct {
	Latest      *MessageDTO `json:"latest"`
	Sender      *SenderDTO  `json:"sender,omitempty"`
	UnreadCount int64       `json:"unread_count"`
}

type MarkReadResult struct {
	Count  int64     `json:"count"`
	ReadAt time.Time `json:"read_at"`
}

func ToMessageDTO(m *message.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:         m.ID(),
		SenderID:   m.SenderID(),
		ReceiverID: m.ReceiverID(),
		PropertyID: m.PropertyID(),
		Content:    m.Content(),
		SentAt:     m.SentAt(),
		ReadAt:     m.ReadAt(),
	}
}

func ToSenderDTO(u *user.User) *SenderDTO {
	if u == nil {
		return nil
	}
	return &SenderDTO{
		ID:       u.ID(),
		FullName: u.FullName(),
		Email:    u.Email().String(),
	}
}
