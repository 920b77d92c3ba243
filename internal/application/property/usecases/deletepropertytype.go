package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// DeletePropertyTypeUseCase removes a type that nothing refers to.
type DeletePropertyTypeUseCase struct {
	typeRepo property.TypeRepository
	logger   logger.Interface
}

func NewDeletePropertyTypeUseCase(typeRepo property.TypeRepository, logger logger.Interface) *DeletePropertyTypeUseCase {
	return &DeletePropertyTypeUseCase{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (uc *DeletePropertyTypeUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.typeRepo.Delete(ctx, id)
	switch {
	case err == nil:
		uc.logger.Infow("property type deleted", "property_type_id", id)
		return nil
	case stderrors.Is(err, property.ErrPropertyTypeNotFound):
		return errors.NewNotFoundError("property type not found")
	case stderrors.Is(err, property.ErrPropertyTypeInUse):
		return errors.NewConflictError("cannot delete this property type", "it still has listings or sub-types")
	default:
		uc.logger.Errorw("failed to delete property type", "error", err, "property_type_id", id)
		return fmt.Errorf("failed to delete property type: %w", err)
	}
}
