package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ListPropertiesQuery struct {
	Filter property.Filter
	// ViewerID marks favorites in the result when non-zero.
	ViewerID uint
	// FavoritesOnly restricts the result to the viewer's favorites.
	FavoritesOnly bool
}

type ListPropertiesResult struct {
	Properties []*dto.PropertyResponse
	Total      int64
}

type ListPropertiesUseCase struct {
	propertyRepo property.Repository
	favoriteRepo property.FavoriteRepository
	logger       logger.Interface
}

func NewListPropertiesUseCase(
	propertyRepo property.Repository,
	favoriteRepo property.FavoriteRepository,
	logger logger.Interface,
) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query ListPropertiesQuery) (*ListPropertiesResult, error) {
	filter := query.Filter
	if query.FavoritesOnly {
		if query.ViewerID == 0 {
			return nil, errors.NewUnauthorizedError("sign in to list favorites")
		}
		viewer := query.ViewerID
		filter.FavoriteOf = &viewer
	}

	properties, total, err := uc.propertyRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list properties", "error", err)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	favorites := map[uint]bool{}
	if query.ViewerID != 0 && len(properties) > 0 {
		ids := make([]uint, len(properties))
		for i, p := range properties {
			ids[i] = p.ID()
		}
		favorites, err = uc.favoriteRepo.FavoritedAmong(ctx, query.ViewerID, ids)
		if err != nil {
			uc.logger.Errorw("failed to load favorites", "error", err, "user_id", query.ViewerID)
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
	}

	items := make([]*dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		items = append(items, dto.ToPropertyResponse(p, favorites[p.ID()]))
	}

	return &ListPropertiesResult{Properties: items, Total: total}, nil
}
