package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/mapper"
)

// CatalogUseCase serves the reference data behind the search form.
type CatalogUseCase struct {
	propertyRepo property.Repository
	typeRepo     property.TypeRepository
	logger       logger.Interface
}

func NewCatalogUseCase(propertyRepo property.Repository, typeRepo property.TypeRepository, logger logger.Interface) *CatalogUseCase {
	return &CatalogUseCase{
		propertyRepo: propertyRepo,
		typeRepo:     typeRepo,
		logger:       logger,
	}
}

func (uc *CatalogUseCase) AreaRange(ctx context.Context) (*dto.AreaRangeResponse, error) {
	lo, hi, err := uc.propertyRepo.AreaRange(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get area range", "error", err)
		return nil, fmt.Errorf("failed to get area range: %w", err)
	}
	return &dto.AreaRangeResponse{Min: lo, Max: hi}, nil
}

func (uc *CatalogUseCase) PropertyTypes(ctx context.Context) ([]*dto.PropertyTypeResponse, error) {
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list property types", "error", err)
		return nil, fmt.Errorf("failed to list property types: %w", err)
	}
	return mapper.MapSlice(types, dto.ToPropertyTypeResponse), nil
}
