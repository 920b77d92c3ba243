package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
)

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) property.FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Toggle(ctx context.Context, userID, propertyID uint) (bool, error) {
	var favorited bool
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		removed := tx.Where("user_id = ? AND property_id = ?", userID, propertyID).Delete(&models.FavoriteModel{})
		if removed.Error != nil {
			return removed.Error
		}
		if removed.RowsAffected > 0 {
			favorited = false
			return nil
		}

		// A concurrent toggle may have inserted the same pair; either way it exists now.
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.FavoriteModel{UserID: userID, PropertyID: propertyID}).Error; err != nil {
			return err
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return favorited, nil
}

func (r *FavoriteRepositoryImpl) FavoritedAmong(ctx context.Context, userID uint, propertyIDs []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(propertyIDs))
	if userID == 0 || len(propertyIDs) == 0 {
		return out, nil
	}

	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.FavoriteModel{}).
		Where("user_id = ? AND property_id IN ?", userID, propertyIDs).
		Pluck("property_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
