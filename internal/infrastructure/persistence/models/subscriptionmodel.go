package models

import (
	"time"

	"github.com/darna-inc/darna/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for user subscriptions.
//
// ActiveUserID mirrors UserID while Status is active and is NULL otherwise.
// Its unique index is what keeps a user at one active subscription.
type SubscriptionModel struct {
	ID             uint      `gorm:"primarykey"`
	UserID         uint      `gorm:"not null;index:idx_user_subscriptions_user_status,priority:1"`
	PlanID         uint      `gorm:"not null;index"`
	Status         string    `gorm:"not null;size:20;index:idx_user_subscriptions_user_status,priority:2"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null;index"`
	PaymentMethod  *string   `gorm:"size:20"`
	PaymentDetails string    `gorm:"type:text"`
	ProofOfPayment string    `gorm:"size:500"`
	ActiveUserID   *uint     `gorm:"uniqueIndex:uk_user_subscriptions_active_user"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableUserSubscriptions
}
