package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type CreatePropertyCommand struct {
	UserID     uint
	Attributes property.Attributes
}

type CreatePropertyUseCase struct {
	propertyRepo property.Repository
	slugFor      func(title string) string
	logger       logger.Interface
}

func NewCreatePropertyUseCase(propertyRepo property.Repository, logger logger.Interface) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
		slugFor:      uniqueSlug,
		logger:       logger,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, cmd CreatePropertyCommand) (*dto.PropertyResponse, error) {
	p, err := property.NewProperty(cmd.UserID, uc.slugFor(cmd.Attributes.Title), cmd.Attributes)
	if err != nil {
		return nil, errors.NewValidationError("invalid property", err.Error())
	}

	if err := uc.propertyRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create property", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	uc.logger.Infow("property created", "property_id", p.ID(), "user_id", cmd.UserID, "slug", p.Slug())
	return dto.ToPropertyResponse(p, false), nil
}
