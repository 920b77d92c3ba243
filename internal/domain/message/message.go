package message

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrReceiverNotFound = errors.New("receiver not found")

// Message is a direct chat message between two users, optionally about a
// property listing.
type Message struct {
	id         uint
	senderID   uint
	receiverID uint
	propertyID *uint
	content    string
	sentAt     time.Time
	readAt     *time.Time
}

func NewMessage(senderID, receiverID uint, propertyID *uint, content string) (*Message, error) {
	if senderID == 0 || receiverID == 0 {
		return nil, fmt.Errorf("sender and receiver are required")
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	return &Message{
		senderID:   senderID,
		receiverID: receiverID,
		propertyID: propertyID,
		content:    content,
		sentAt:     time.Now().UTC(),
	}, nil
}

func ReconstructMessage(id, senderID, receiverID uint, propertyID *uint, content string, sentAt time.Time, readAt *time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	return &Message{
		id:         id,
		senderID:   senderID,
		receiverID: receiverID,
		propertyID: propertyID,
		content:    content,
		sentAt:     sentAt,
		readAt:     readAt,
	}, nil
}

func (m *Message) ID() uint           { return m.id }
func (m *Message) SenderID() uint     { return m.senderID }
func (m *Message) ReceiverID() uint   { return m.receiverID }
func (m *Message) PropertyID() *uint  { return m.propertyID }
func (m *Message) Content() string    { return m.content }
func (m *Message) SentAt() time.Time  { return m.sentAt }
func (m *Message) ReadAt() *time.Time { return m.readAt }
func (m *Message) IsRead() bool       { return m.readAt != nil }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// SanitizeContent replaces the content with a cleaned version.
func (m *Message) SanitizeContent(clean func(string) string) {
	m.content = clean(m.content)
}
