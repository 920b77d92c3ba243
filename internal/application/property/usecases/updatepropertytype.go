package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// UpdatePropertyTypeCommand renames a type. The position in the tree is fixed.
type UpdatePropertyTypeCommand struct {
	ID     uint
	Name   string
	NameFR string
	NameAR string
}

type UpdatePropertyTypeUseCase struct {
	typeRepo property.TypeRepository
	logger   logger.Interface
}

func NewUpdatePropertyTypeUseCase(typeRepo property.TypeRepository, logger logger.Interface) *UpdatePropertyTypeUseCase {
	return &UpdatePropertyTypeUseCase{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (uc *UpdatePropertyTypeUseCase) Execute(ctx context.Context, cmd UpdatePropertyTypeCommand) (*dto.PropertyTypeResponse, error) {
	t, err := uc.typeRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get property type", "error", err, "property_type_id", cmd.ID)
		return nil, fmt.Errorf("failed to get property type: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("property type not found")
	}

	t.Name, t.NameFR, t.NameAR = cmd.Name, cmd.NameFR, cmd.NameAR
	if err := t.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid property type", err.Error())
	}

	if err := uc.typeRepo.Update(ctx, t); err != nil {
		if stderrors.Is(err, property.ErrPropertyTypeNotFound) {
			return nil, errors.NewNotFoundError("property type not found")
		}
		uc.logger.Errorw("failed to update property type", "error", err, "property_type_id", cmd.ID)
		return nil, fmt.Errorf("failed to update property type: %w", err)
	}

	uc.logger.Infow("property type updated", "property_type_id", t.ID)
	return dto.ToPropertyTypeResponse(t), nil
}
