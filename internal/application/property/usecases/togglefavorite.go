package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ToggleFavoriteUseCase struct {
	propertyRepo property.Repository
	favoriteRepo property.FavoriteRepository
	logger       logger.Interface
}

func NewToggleFavoriteUseCase(
	propertyRepo property.Repository,
	favoriteRepo property.FavoriteRepository,
	logger logger.Interface,
) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		propertyRepo: propertyRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, userID, propertyID uint) (*dto.FavoriteResponse, error) {
	p, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		uc.logger.Errorw("failed to get property", "error", err, "property_id", propertyID)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("property not found")
	}

	favorited, err := uc.favoriteRepo.Toggle(ctx, userID, propertyID)
	if err != nil {
		uc.logger.Errorw("failed to toggle favorite", "error", err, "property_id", propertyID, "user_id", userID)
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	return &dto.FavoriteResponse{PropertyID: propertyID, Favorited: favorited}, nil
}
