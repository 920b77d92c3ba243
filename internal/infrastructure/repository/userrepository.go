package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/mappers"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
	apperrors "github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailAlreadyExists
		}
		r.logger.Errorw("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to get users by IDs", "error", err, "ids", ids)
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	return r.mapper.ToEntities(userModels)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	// A map so that clearing birthday or gender writes NULL.
	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"full_name":     model.FullName,
			"email":         model.Email,
			"phone_number":  model.PhoneNumber,
			"password_hash": model.PasswordHash,
			"picture_url":   model.PictureURL,
			"birthday":      model.Birthday,
			"gender":        model.Gender,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return user.ErrEmailAlreadyExists
		}
		r.logger.Errorw("failed to update user", "error", result.Error, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete removes the user together with the rows that reference it. The
// MySQL schema cascades too, but auto-migrated schemas carry no foreign keys.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		owned := tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.PropertyModel{}).
			Select("id").
			Where("user_id = ?", id)
		if err := tx.Where("user_id = ? OR property_id IN (?)", id, owned).Delete(&models.FavoriteModel{}).Error; err != nil {
			return err
		}

		for _, m := range []interface{}{
			&models.PropertyModel{},
			&models.SubscriptionModel{},
			&models.TicketModel{},
			&models.SocialMediaModel{},
			&models.BusinessAccountModel{},
			&models.NotificationSettingsModel{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).Delete(&models.MessageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PropertyTagModel{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.UserModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return user.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		r.logger.Errorw("failed to delete user", "error", err, "user_id", id)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, f user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Scopes(db.Search(f.Query, "full_name", "email", "phone_number"))
	if len(f.Roles) > 0 {
		roles := make([]string, len(f.Roles))
		for i, role := range f.Roles {
			roles[i] = role.String()
		}
		query = query.Where("user_type IN ?", roles)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	if err := query.Scopes(db.Paginate(f.Offset, f.Limit)).
		Order("created_at DESC, id DESC").
		Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
