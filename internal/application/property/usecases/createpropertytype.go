package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type CreatePropertyTypeCommand struct {
	Name     string
	NameFR   string
	NameAR   string
	ParentID *uint
}

// CreatePropertyTypeUseCase adds a category to the type tree.
type CreatePropertyTypeUseCase struct {
	typeRepo property.TypeRepository
	logger   logger.Interface
}

func NewCreatePropertyTypeUseCase(typeRepo property.TypeRepository, logger logger.Interface) *CreatePropertyTypeUseCase {
	return &CreatePropertyTypeUseCase{
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (uc *CreatePropertyTypeUseCase) Execute(ctx context.Context, cmd CreatePropertyTypeCommand) (*dto.PropertyTypeResponse, error) {
	t := &property.Type{
		Name:     cmd.Name,
		NameFR:   cmd.NameFR,
		NameAR:   cmd.NameAR,
		ParentID: cmd.ParentID,
	}
	if err := t.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid property type", err.Error())
	}

	if t.ParentID != nil {
		parent, err := uc.typeRepo.GetByID(ctx, *t.ParentID)
		if err != nil {
			uc.logger.Errorw("failed to get parent property type", "error", err, "parent_id", *t.ParentID)
			return nil, fmt.Errorf("failed to get parent property type: %w", err)
		}
		if parent == nil {
			return nil, errors.NewValidationError("parent property type not found", fmt.Sprintf("parent_id=%d", *t.ParentID))
		}
	}

	if err := uc.typeRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create property type", "error", err, "name", t.Name)
		return nil, fmt.Errorf("failed to create property type: %w", err)
	}

	uc.logger.Infow("property type created", "property_type_id", t.ID, "name", t.Name)
	return dto.ToPropertyTypeResponse(t), nil
}
