package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/darna-inc/darna/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans.
// A NULL Features column means the plan grants no features at all.
type PlanModel struct {
	ID            uint            `gorm:"primarykey"`
	Name          string          `gorm:"not null;size:100"`
	Description   string          `gorm:"size:500"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;index"`
	MaxProperties int             `gorm:"not null;default:1"`
	Features      datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PlanModel) TableName() string {
	return constants.TableSubscriptionPlans
}
