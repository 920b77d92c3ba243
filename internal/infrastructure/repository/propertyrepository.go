package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/mappers"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type PropertyRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PropertyMapper
	logger logger.Interface
}

func NewPropertyRepository(db *gorm.DB, logger logger.Interface) property.Repository {
	return &PropertyRepositoryImpl{
		db:     db,
		mapper: mappers.NewPropertyMapper(),
		logger: logger,
	}
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, p *property.Property) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert property to model: %w", err)
	}

	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return registerTags(tx, p.UserID(), p.Attributes().Tags)
	})
	if err != nil {
		r.logger.Errorw("failed to create property", "error", err, "user_id", p.UserID())
		return fmt.Errorf("failed to create property: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PropertyRepositoryImpl) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *PropertyRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*property.Property, error) {
	return r.getWhere(ctx, "slug = ?", slug)
}

func (r *PropertyRepositoryImpl) getWhere(ctx context.Context, cond string, arg interface{}) (*property.Property, error) {
	var model models.PropertyModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get property", "error", err, "cond", cond)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PropertyRepositoryImpl) Update(ctx context.Context, p *property.Property) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert property to model: %w", err)
	}

	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		// views is owned by IncrementViews and never written here.
		result := tx.Model(&models.PropertyModel{}).
			Where("id = ?", p.ID()).
			Select("*").
			Omit("id", "user_id", "views", "created_at").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return property.ErrPropertyNotFound
		}
		return registerTags(tx, p.UserID(), p.Attributes().Tags)
	})
	if err != nil {
		if errors.Is(err, property.ErrPropertyNotFound) {
			return err
		}
		r.logger.Errorw("failed to update property", "error", err, "property_id", p.ID())
		return fmt.Errorf("failed to update property: %w", err)
	}
	return nil
}

func (r *PropertyRepositoryImpl) Delete(ctx context.Context, id, ownerID uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.PropertyModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete property: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return property.ErrPropertyNotFound
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.FavoriteModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites of property: %w", err)
		}
		return nil
	})
}

func (r *PropertyRepositoryImpl) List(ctx context.Context, f property.Filter) ([]*property.Property, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{}).
		Scopes(
			db.Search(f.Query, "title", "description", "address", "postal_code", "city"),
			propertyFilterScope(f),
		)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count properties", "error", err)
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	var propertyModels []*models.PropertyModel
	if err := query.Scopes(db.Paginate(f.Offset, f.Limit)).
		Order("created_at DESC, id DESC").
		Find(&propertyModels).Error; err != nil {
		r.logger.Errorw("failed to list properties", "error", err)
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	items, err := r.mapper.ToEntities(propertyModels)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// propertyFilterScope ANDs every set predicate of f.
func propertyFilterScope(f property.Filter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.MinPrice != nil {
			q = q.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("price <= ?", *f.MaxPrice)
		}
		if len(f.PropertyTypeIDs) > 0 {
			q = q.Where("property_type_id IN ?", f.PropertyTypeIDs)
		}
		if len(f.AdTypes) > 0 {
			adTypes := make([]string, len(f.AdTypes))
			for i, a := range f.AdTypes {
				adTypes[i] = string(a)
			}
			q = q.Where("ad_type IN ?", adTypes)
		}
		if f.MinArea != nil {
			q = q.Where("area_sq_meters >= ?", *f.MinArea)
		}
		if f.MaxArea != nil {
			q = q.Where("area_sq_meters <= ?", *f.MaxArea)
		}
		if f.MinRooms != nil {
			q = q.Where("num_rooms >= ?", *f.MinRooms)
		}
		if f.MinBathrooms != nil {
			q = q.Where("bathrooms >= ?", *f.MinBathrooms)
		}
		if f.Furnished != nil {
			q = q.Where("furnished = ?", *f.Furnished)
		}
		if f.OwnershipBook != nil {
			q = q.Where("ownership_book = ?", *f.OwnershipBook)
		}
		if f.Status != nil {
			q = q.Where("status = ?", string(*f.Status))
		}
		if f.UserID != nil {
			q = q.Where("user_id = ?", *f.UserID)
		}
		if f.FavoriteOf != nil {
			favorites := q.Session(&gorm.Session{NewDB: true}).
				Model(&models.FavoriteModel{}).
				Select("property_id").
				Where("user_id = ?", *f.FavoriteOf)
			q = q.Where("id IN (?)", favorites)
		}
		return q
	}
}

func (r *PropertyRepositoryImpl) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return count, nil
}

func (r *PropertyRepositoryImpl) IncrementViews(ctx context.Context, id uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PropertyModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, property.ErrPropertyNotFound
	}

	var views []int
	if err := tx.Model(&models.PropertyModel{}).Where("id = ?", id).Pluck("views", &views).Error; err != nil {
		return 0, fmt.Errorf("failed to read views: %w", err)
	}
	if len(views) == 0 {
		return 0, property.ErrPropertyNotFound
	}
	return views[0], nil
}

func (r *PropertyRepositoryImpl) AreaRange(ctx context.Context) (float64, float64, error) {
	var row struct {
		MinArea float64
		MaxArea float64
	}
	err := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyModel{}).
		Select("COALESCE(MIN(area_sq_meters), 0) AS min_area, COALESCE(MAX(area_sq_meters), 0) AS max_area").
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate areas: %w", err)
	}
	return row.MinArea, row.MaxArea, nil
}
