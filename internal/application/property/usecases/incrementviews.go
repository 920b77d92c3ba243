package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type IncrementViewsUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewIncrementViewsUseCase(propertyRepo property.Repository, logger logger.Interface) *IncrementViewsUseCase {
	return &IncrementViewsUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Execute returns the view count after the increment.
func (uc *IncrementViewsUseCase) Execute(ctx context.Context, propertyID uint) (int, error) {
	views, err := uc.propertyRepo.IncrementViews(ctx, propertyID)
	if err != nil {
		if stderrors.Is(err, property.ErrPropertyNotFound) {
			return 0, errors.NewNotFoundError("property not found")
		}
		uc.logger.Errorw("failed to increment views", "error", err, "property_id", propertyID)
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}
