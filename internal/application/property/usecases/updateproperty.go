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

type UpdatePropertyCommand struct {
	ID         uint
	UserID     uint
	Attributes property.Attributes
}

// UpdatePropertyUseCase replaces the editable fields of a listing. Only the
// owner may edit it.
type UpdatePropertyUseCase struct {
	propertyRepo property.Repository
	slugFor      func(title string) string
	logger       logger.Interface
}

func NewUpdatePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		propertyRepo: propertyRepo,
		slugFor:      uniqueSlug,
		logger:       logger,
	}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, cmd UpdatePropertyCommand) (*dto.PropertyResponse, error) {
	p, err := uc.propertyRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get property", "error", err, "property_id", cmd.ID)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("property not found")
	}
	if !p.IsOwnedBy(cmd.UserID) {
		return nil, errors.NewForbiddenError("only the owner can edit this property")
	}

	slug := ""
	if p.Attributes().Title != cmd.Attributes.Title {
		slug = uc.slugFor(cmd.Attributes.Title)
	}
	if err := p.Apply(cmd.Attributes, slug); err != nil {
		return nil, errors.NewValidationError("invalid property", err.Error())
	}

	if err := uc.propertyRepo.Update(ctx, p); err != nil {
		if stderrors.Is(err, property.ErrPropertyNotFound) {
			return nil, errors.NewNotFoundError("property not found")
		}
		uc.logger.Errorw("failed to update property", "error", err, "property_id", cmd.ID)
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	uc.logger.Infow("property updated", "property_id", p.ID())
	return dto.ToPropertyResponse(p, false), nil
}
