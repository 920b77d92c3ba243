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

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) property.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) ListVisible(ctx context.Context, userID uint) ([]*property.Tag, error) {
	var rows []*models.PropertyTagModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("approved = ? OR user_id = ?", true, userID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*property.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, &property.Tag{
			ID:       row.ID,
			Name:     row.Name,
			UserID:   row.UserID,
			Approved: row.Approved,
		})
	}
	return tags, nil
}

func (r *TagRepositoryImpl) Approve(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyTagModel{}).
		Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return fmt.Errorf("failed to approve tag: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when the tag was already approved.
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PropertyTagModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check tag: %w", err)
	}
	if count == 0 {
		return property.ErrTagNotFound
	}
	return nil
}

// registerTags records names not seen before as introduced by userID.
func registerTags(tx *gorm.DB, userID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]*models.PropertyTagModel, 0, len(names))
	for _, name := range names {
		owner := userID
		rows = append(rows, &models.PropertyTagModel{Name: name, UserID: &owner})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
