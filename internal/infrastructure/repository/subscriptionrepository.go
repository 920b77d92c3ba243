package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/mappers"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/db"
	apperrors "github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return subscription.ErrActiveSubscriptionExists
		}
		r.logger.Errorw("failed to create subscription", "error", err, "user_id", sub.UserID(), "plan_id", sub.PlanID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription created", "subscription_id", model.ID, "user_id", sub.UserID(), "status", sub.Status())
	return nil
}

func (r *SubscriptionRepositoryImpl) ClaimActive(ctx context.Context, sub *subscription.Subscription) error {
	if !sub.IsActive() {
		return fmt.Errorf("claim requires an active subscription, got %s", sub.Status())
	}
	return r.Create(ctx, sub)
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription, from vo.SubscriptionStatus) error {
	model := r.mapper.ToModel(sub)

	fields := map[string]interface{}{
		"payment_details": model.PaymentDetails,
		"updated_at":      model.UpdatedAt,
	}
	if sub.Status() != from {
		fields["status"] = model.Status
		fields["active_user_id"] = model.ActiveUserID
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("id = ? AND status = ?", sub.ID(), from).
		Updates(fields)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return subscription.ErrActiveSubscriptionExists
		}
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("subscription changed before update", "subscription_id", sub.ID(), "expected_status", from)
		return subscription.ErrSubscriptionModified
	}

	r.logger.Infow("subscription updated", "subscription_id", sub.ID(), "status", model.Status)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindActiveByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND status = ?", userID, vo.StatusActive).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find active subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ExpireIfActive(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("id = ? AND status = ?", id, vo.StatusActive).
		Updates(map[string]interface{}{
			"status":         vo.StatusExpired.String(),
			"active_user_id": nil,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to expire subscription", "error", result.Error, "subscription_id", id)
		return false, fmt.Errorf("failed to expire subscription: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *SubscriptionRepositoryImpl) ExpirePaid(ctx context.Context, criteria subscription.SweepCriteria) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	paidPlans := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.PlanModel{}).
		Select("id").
		Where("price > ?", 0)

	query := tx.Model(&models.SubscriptionModel{}).
		Where("status = ?", vo.StatusActive).
		Where("plan_id IN (?)", paidPlans)

	switch criteria.Condition {
	case subscription.SweepPastDue:
		query = query.Where("end_date <= ?", criteria.Now)
	case subscription.SweepLiteral:
		query = query.Where("end_date >= ?", criteria.Now)
	default:
		return 0, fmt.Errorf("unknown sweep condition %q", criteria.Condition)
	}

	result := query.Updates(map[string]interface{}{
		"status":         vo.StatusExpired.String(),
		"active_user_id": nil,
		"updated_at":     criteria.Now,
	})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire paid subscriptions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	table := constants.TableUserSubscriptions
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{})

	if filter.UserID != nil {
		query = query.Where(table+".user_id = ?", *filter.UserID)
	}
	if filter.PlanID != nil {
		query = query.Where(table+".plan_id = ?", *filter.PlanID)
	}
	if filter.Status != nil {
		query = query.Where(table+".status = ?", filter.Status.String())
	}
	if filter.PaymentMethod != nil {
		query = query.Where(table+".payment_method = ?", filter.PaymentMethod.String())
	}
	if filter.StartFrom != nil {
		query = query.Where(table+".start_date >= ?", *filter.StartFrom)
	}
	if filter.EndUntil != nil {
		query = query.Where(table+".end_date <= ?", *filter.EndUntil)
	}
	if filter.UserQuery != "" {
		users := constants.TableUsers
		query = query.
			Joins("JOIN " + users + " ON " + users + ".id = " + table + ".user_id").
			Scopes(db.Search(filter.UserQuery, users+".full_name", users+".email", users+".phone_number"))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var subModels []*models.SubscriptionModel
	if err := query.Select(table + ".*").
		Scopes(db.Paginate(filter.Offset, filter.Limit)).
		Order(table + ".created_at DESC").
		Order(table + ".id DESC").
		Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs, err := r.mapper.ToEntities(subModels)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *SubscriptionRepositoryImpl) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count subscriptions for plan: %w", err)
	}
	return count, nil
}
