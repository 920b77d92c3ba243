package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type PropertyTypeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPropertyTypeRepository(db *gorm.DB, logger logger.Interface) property.TypeRepository {
	return &PropertyTypeRepositoryImpl{db: db, logger: logger}
}

func toPropertyType(row *models.PropertyTypeModel) *property.Type {
	return &property.Type{
		ID:       row.ID,
		Name:     row.Name,
		NameFR:   row.NameFR,
		NameAR:   row.NameAR,
		ParentID: row.ParentID,
	}
}

func (r *PropertyTypeRepositoryImpl) List(ctx context.Context) ([]*property.Type, error) {
	var rows []*models.PropertyTypeModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list property types: %w", err)
	}

	types := make([]*property.Type, 0, len(rows))
	for _, row := range rows {
		types = append(types, toPropertyType(row))
	}
	return types, nil
}

func (r *PropertyTypeRepositoryImpl) GetByID(ctx context.Context, id uint) (*property.Type, error) {
	var row models.PropertyTypeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property type: %w", err)
	}
	return toPropertyType(&row), nil
}

func (r *PropertyTypeRepositoryImpl) Create(ctx context.Context, t *property.Type) error {
	row := &models.PropertyTypeModel{
		Name:     t.Name,
		NameFR:   t.NameFR,
		NameAR:   t.NameAR,
		ParentID: t.ParentID,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(row).Error; err != nil {
		r.logger.Errorw("failed to create property type", "error", err, "name", t.Name)
		return fmt.Errorf("failed to create property type: %w", err)
	}
	t.ID = row.ID
	return nil
}

func (r *PropertyTypeRepositoryImpl) Update(ctx context.Context, t *property.Type) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyTypeModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":    t.Name,
			"name_fr": t.NameFR,
			"name_ar": t.NameAR,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update property type", "error", result.Error, "property_type_id", t.ID)
		return fmt.Errorf("failed to update property type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return property.ErrPropertyTypeNotFound
	}
	return nil
}

func (r *PropertyTypeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.PropertyModel{}).Where("property_type_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count listings of property type: %w", err)
		}
		if refs == 0 {
			if err := tx.Model(&models.PropertyTypeModel{}).Where("parent_id = ?", id).Count(&refs).Error; err != nil {
				return fmt.Errorf("failed to count children of property type: %w", err)
			}
		}
		if refs > 0 {
			return property.ErrPropertyTypeInUse
		}

		result := tx.Delete(&models.PropertyTypeModel{}, id)
		if result.Error != nil {
			r.logger.Errorw("failed to delete property type", "error", result.Error, "property_type_id", id)
			return fmt.Errorf("failed to delete property type: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return property.ErrPropertyTypeNotFound
		}
		return nil
	})
}
