package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/mapper"
)

// TagsUseCase serves the tag suggestions of the listing form and lets
// staff approve a tag for everyone.
type TagsUseCase struct {
	tagRepo property.TagRepository
	logger  logger.Interface
}

func NewTagsUseCase(tagRepo property.TagRepository, logger logger.Interface) *TagsUseCase {
	return &TagsUseCase{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (uc *TagsUseCase) List(ctx context.Context, userID uint) ([]*dto.TagResponse, error) {
	tags, err := uc.tagRepo.ListVisible(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return mapper.MapSlice(tags, dto.ToTagResponse), nil
}

func (uc *TagsUseCase) Approve(ctx context.Context, id uint) error {
	if err := uc.tagRepo.Approve(ctx, id); err != nil {
		if stderrors.Is(err, property.ErrTagNotFound) {
			return errors.NewNotFoundError("tag not found")
		}
		uc.logger.Errorw("failed to approve tag", "error", err, "tag_id", id)
		return fmt.Errorf("failed to approve tag: %w", err)
	}
	uc.logger.Infow("tag approved", "tag_id", id)
	return nil
}
