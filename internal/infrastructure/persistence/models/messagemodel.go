package models

import (
	"time"

	"github.com/darna-inc/darna/internal/shared/constants"
)

type MessageModel struct {
	ID         uint      `gorm:"primarykey"`
	SenderID   uint      `gorm:"not null;index:idx_messages_pair,priority:1"`
	ReceiverID uint      `gorm:"not null;index:idx_messages_pair,priority:2;index"`
	PropertyID *uint     `gorm:"index"`
	Content    string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null;index"`
	ReadAt     *time.Time
}

func (MessageModel) TableName() string {
	return constants.TableMessages
}
