package models

import (
	"time"

	"github.com/darna-inc/darna/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primarykey"`
	UserID      uint   `gorm:"not null;index"`
	ReplierID   *uint  `gorm:"index"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"type:text;not null"`
	Answer      string `gorm:"type:text"`
	AnswerHTML  string `gorm:"column:answer_html;type:text"`
	Status      string `gorm:"not null;size:20;index"`
	AnsweredAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
