package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/domain/analytics"
	"github.com/darna-inc/darna/internal/domain/property"
)

type PropertyTypeRef struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	NameFR string `json:"name_fr"`
	NameAR string `json:"name_ar"`
}

type TypeCountResponse struct {
	PropertyTypeID uint             `json:"property_type_id"`
	Count          int64            `json:"count"`
	PropertyType   *PropertyTypeRef `json:"property_type,omitempty"`
}

// DashboardResponse carries the previous window's counters only when the
// request named both dates. NewProperties is only filled for staff.
type DashboardResponse struct {
	OpenProperties         int64                `json:"open_properties"`
	UnreadMessages         int64                `json:"unread_messages"`
	PreviousOpenProperties *int64               `json:"previous_open_properties,omitempty"`
	PreviousUnreadMessages *int64               `json:"previous_unread_messages,omitempty"`
	NewProperties          []*TypeCountResponse `json:"new_properties,omitempty"`
}

type PropertyPointResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Views     int       `json:"views"`
}

type SubscriptionPointResponse struct {
	CreatedAt   time.Time       `json:"created_at"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type GeneralStatsResponse struct {
	UserCount             int64                        `json:"user_count"`
	CurrentProperties     []*PropertyPointResponse     `json:"current_properties"`
	PreviousProperties    []*PropertyPointResponse     `json:"previous_properties"`
	CurrentSubscriptions  []*SubscriptionPointResponse `json:"current_subscriptions"`
	PreviousSubscriptions []*SubscriptionPointResponse `json:"previous_subscriptions"`
}

func ToTypeCountResponse(c analytics.TypeCount, t *property.Type) *TypeCountResponse {
	result := &TypeCountResponse{PropertyTypeID: c.PropertyTypeID, Count: c.Count}
	if t != nil {
		result.PropertyType = &PropertyTypeRef{ID: t.ID, Name: t.Name, NameFR: t.NameFR, NameAR: t.NameAR}
	}
	return result
}

func ToPropertyPointResponse(p analytics.PropertyPoint) *PropertyPointResponse {
	return &PropertyPointResponse{ID: p.ID, CreatedAt: p.CreatedAt, Views: p.Views}
}

func ToSubscriptionPointResponse(p analytics.SubscriptionPoint) *SubscriptionPointResponse {
	return &SubscriptionPointResponse{CreatedAt: p.CreatedAt, TotalAmount: p.Amount}
}
