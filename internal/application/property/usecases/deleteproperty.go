package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type DeletePropertyUseCase struct {
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewDeletePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Execute deletes the listing when userID owns it. Listings owned by
// someone else are reported as not found.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, propertyID, userID uint) error {
	if err := uc.propertyRepo.Delete(ctx, propertyID, userID); err != nil {
		if stderrors.Is(err, property.ErrPropertyNotFound) {
			return errors.NewNotFoundError("property not found")
		}
		uc.logger.Errorw("failed to delete property", "error", err, "property_id", propertyID)
		return fmt.Errorf("failed to delete property: %w", err)
	}

	uc.logger.Infow("property deleted", "property_id", propertyID, "user_id", userID)
	return nil
}
