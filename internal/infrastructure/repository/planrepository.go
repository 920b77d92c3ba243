package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/mappers"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
	apperrors "github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(logger),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription plan created successfully", "plan_id", model.ID, "name", plan.Name())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *subscription.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"description":    model.Description,
			"price":          model.Price,
			"max_properties": model.MaxProperties,
			"features":       model.Features,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update subscription plan: %w", result.Error)
	}

	r.logger.Infow("subscription plan updated successfully", "plan_id", plan.ID())
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var refs int64
	if err := tx.Model(&models.SubscriptionModel{}).Where("plan_id = ?", id).Count(&refs).Error; err != nil {
		return fmt.Errorf("failed to count plan references: %w", err)
	}
	if refs > 0 {
		return subscription.ErrPlanInUse
	}

	result := tx.Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		if apperrors.IsForeignKeyError(result.Error) {
			return subscription.ErrPlanInUse
		}
		r.logger.Errorw("failed to delete subscription plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete subscription plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return subscription.ErrPlanNotFound
	}

	r.logger.Infow("subscription plan deleted successfully", "plan_id", id)
	return nil
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter subscription.PlanFilter) ([]*subscription.Plan, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Scopes(db.Search(filter.Query, "name", "description"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscription plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscription plans: %w", err)
	}

	var planModels []*models.PlanModel
	if err := query.Scopes(db.Paginate(filter.Offset, filter.Limit)).
		Order("price ASC, id ASC").
		Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscription plans: %w", err)
	}

	plans, err := r.mapper.ToEntities(planModels)
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *PlanRepositoryImpl) GetFreePlan(ctx context.Context) (*subscription.Plan, error) {
	var model models.PlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("price = ?", 0).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get free plan", "error", err)
		return nil, fmt.Errorf("failed to get free plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
