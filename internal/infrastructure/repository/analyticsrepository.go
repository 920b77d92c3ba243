package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/analytics"
	vo "github.com/darna-inc/darna/internal/domain/property/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type AnalyticsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAnalyticsRepository(db *gorm.DB, logger logger.Interface) analytics.Repository {
	return &AnalyticsRepositoryImpl{db: db, logger: logger}
}

// within keeps rows whose column falls in w.
func within(column string, w analytics.Window) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if !w.From.IsZero() {
			q = q.Where(column+" > ?", w.From)
		}
		if !w.To.IsZero() {
			q = q.Where(column+" <= ?", w.To)
		}
		return q
	}
}

func (r *AnalyticsRepositoryImpl) CountOpenProperties(ctx context.Context, w analytics.Window, ownerID *uint) (int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{}).
		Scopes(within("created_at", w)).
		Where("status = ?", string(vo.ListingAvailable))
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count open properties", "error", err)
		return 0, fmt.Errorf("failed to count open properties: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepositoryImpl) CountUnreadMessages(ctx context.Context, w analytics.Window, receiverID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.MessageModel{}).
		Scopes(within("sent_at", w)).
		Where("receiver_id = ? AND read_at IS NULL", receiverID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepositoryImpl) CountPropertiesByType(ctx context.Context, w analytics.Window) ([]analytics.TypeCount, error) {
	var rows []struct {
		PropertyTypeID uint
		Count          int64
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{}).
		Scopes(within("created_at", w)).
		Select("property_type_id, COUNT(*) AS count").
		Group("property_type_id").
		Order("property_type_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count properties by type: %w", err)
	}

	counts := make([]analytics.TypeCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, analytics.TypeCount{PropertyTypeID: row.PropertyTypeID, Count: row.Count})
	}
	return counts, nil
}

func (r *AnalyticsRepositoryImpl) CountUsers(ctx context.Context, w analytics.Window) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Scopes(within("created_at", w)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepositoryImpl) Properties(ctx context.Context, w analytics.Window) ([]analytics.PropertyPoint, error) {
	var rows []struct {
		ID        uint
		CreatedAt time.Time
		Views     int
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{}).
		Scopes(within("created_at", w)).
		Select("id, created_at, views").
		Order("created_at ASC, id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	points := make([]analytics.PropertyPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, analytics.PropertyPoint{ID: row.ID, CreatedAt: row.CreatedAt, Views: row.Views})
	}
	return points, nil
}

func (r *AnalyticsRepositoryImpl) Subscriptions(ctx context.Context, w analytics.Window) ([]analytics.SubscriptionPoint, error) {
	var rows []struct {
		CreatedAt time.Time
		Amount    decimal.Decimal
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableUserSubscriptions + " AS s").
		Joins("JOIN " + constants.TableSubscriptionPlans + " AS p ON p.id = s.plan_id").
		Scopes(within("s.created_at", w)).
		Select("s.created_at AS created_at, p.price AS amount").
		Order("s.created_at ASC, s.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	points := make([]analytics.SubscriptionPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, analytics.SubscriptionPoint{CreatedAt: row.CreatedAt, Amount: row.Amount})
	}
	return points, nil
}
