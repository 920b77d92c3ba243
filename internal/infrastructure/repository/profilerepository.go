package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProfileRepository(db *gorm.DB, logger logger.Interface) user.ProfileRepository {
	return &ProfileRepositoryImpl{db: db, logger: logger}
}

// upsertByUser inserts row or overwrites columns of the row already held by the same user.
func (r *ProfileRepositoryImpl) upsertByUser(ctx context.Context, row interface{}, columns ...string) error {
	return db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
		}).
		Create(row).Error
}

func (r *ProfileRepositoryImpl) GetSocialMedia(ctx context.Context, userID uint) (*user.SocialMedia, error) {
	var row models.SocialMediaModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get social media: %w", err)
	}
	return &user.SocialMedia{
		Facebook:  row.Facebook,
		Instagram: row.Instagram,
		TikTok:    row.TikTok,
		WhatsApp:  row.WhatsApp,
	}, nil
}

func (r *ProfileRepositoryImpl) SaveSocialMedia(ctx context.Context, userID uint, sm user.SocialMedia) error {
	row := &models.SocialMediaModel{
		UserID:    userID,
		Facebook:  sm.Facebook,
		Instagram: sm.Instagram,
		TikTok:    sm.TikTok,
		WhatsApp:  sm.WhatsApp,
	}
	if err := r.upsertByUser(ctx, row, "facebook", "instagram", "tiktok", "whatsapp"); err != nil {
		r.logger.Errorw("failed to save social media", "error", err, "user_id", userID)
		return fmt.Errorf("failed to save social media: %w", err)
	}
	return nil
}

func (r *ProfileRepositoryImpl) GetBusinessAccount(ctx context.Context, userID uint) (*user.BusinessAccount, error) {
	var row models.BusinessAccountModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business account: %w", err)
	}
	return &user.BusinessAccount{
		CoverPictureURL:    row.CoverPictureURL,
		AgencyName:         row.AgencyName,
		RegistrationNumber: row.RegistrationNumber,
		BusinessAddress:    row.BusinessAddress,
	}, nil
}

func (r *ProfileRepositoryImpl) SaveBusinessAccount(ctx context.Context, userID uint, ba user.BusinessAccount) error {
	row := &models.BusinessAccountModel{
		UserID:             userID,
		CoverPictureURL:    ba.CoverPictureURL,
		AgencyName:         ba.AgencyName,
		RegistrationNumber: ba.RegistrationNumber,
		BusinessAddress:    ba.BusinessAddress,
	}
	if err := r.upsertByUser(ctx, row, "cover_picture_url", "agency_name", "registration_number", "business_address"); err != nil {
		r.logger.Errorw("failed to save business account", "error", err, "user_id", userID)
		return fmt.Errorf("failed to save business account: %w", err)
	}
	return nil
}

func (r *ProfileRepositoryImpl) GetNotificationSettings(ctx context.Context, userID uint) (user.NotificationSettings, error) {
	var row models.NotificationSettingsModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.DefaultNotificationSettings(), nil
		}
		return user.NotificationSettings{}, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return user.NotificationSettings{Messages: row.Messages, Ads: row.Ads}, nil
}

func (r *ProfileRepositoryImpl) SaveNotificationSettings(ctx context.Context, userID uint, s user.NotificationSettings) error {
	row := &models.NotificationSettingsModel{UserID: userID, Messages: s.Messages, Ads: s.Ads}
	if err := r.upsertByUser(ctx, row, "messages", "ads"); err != nil {
		r.logger.Errorw("failed to save notification settings", "error", err, "user_id", userID)
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	return nil
}
