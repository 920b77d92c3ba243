package mappers

import (
	"fmt"

	"github.com/darna-inc/darna/internal/domain/user"
	vo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/authorization"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email for user %d: %w", model.ID, err)
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.FullName,
		email,
		model.PhoneNumber,
		authorization.ParseUserRole(model.UserType),
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u.WithProfile(user.Profile{
		PictureURL: model.PictureURL,
		Birthday:   model.Birthday,
		Gender:     model.Gender,
	}), nil
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	profile := entity.Profile()
	return &models.UserModel{
		ID:           entity.ID(),
		FullName:     entity.FullName(),
		Email:        entity.Email().String(),
		PhoneNumber:  entity.PhoneNumber(),
		UserType:     entity.Role().String(),
		PasswordHash: entity.PasswordHash(),
		PictureURL:   profile.PictureURL,
		Birthday:     profile.Birthday,
		Gender:       profile.Gender,
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
