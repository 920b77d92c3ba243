package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// GetPropertyQuery selects a listing by ID or, when ID is zero, by slug.
type GetPropertyQuery struct {
	ID       uint
	Slug     string
	ViewerID uint
}

type GetPropertyUseCase struct {
	propertyRepo property.Repository
	favoriteRepo property.FavoriteRepository
	logger       logger.Interface
}

func NewGetPropertyUseCase(
	propertyRepo property.Repository,
	favoriteRepo property.FavoriteRepository,
	logger logger.Interface,
) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo: propertyRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, query GetPropertyQuery) (*dto.PropertyResponse, error) {
	var (
		p   *property.Property
		err error
	)
	if query.ID != 0 {
		p, err = uc.propertyRepo.GetByID(ctx, query.ID)
	} else {
		p, err = uc.propertyRepo.GetBySlug(ctx, query.Slug)
	}
	if err != nil {
		uc.logger.Errorw("failed to get property", "error", err, "property_id", query.ID, "slug", query.Slug)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("property not found")
	}

	favorite := false
	if query.ViewerID != 0 {
		favs, err := uc.favoriteRepo.FavoritedAmong(ctx, query.ViewerID, []uint{p.ID()})
		if err != nil {
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
		favorite = favs[p.ID()]
	}

	return dto.ToPropertyResponse(p, favorite), nil
}
