package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// DeleteUserUseCase removes an account with everything it owns. Staff
// cannot remove their own account this way.
type DeleteUserUseCase struct {
	userRepo   user.Repository
	identities IdentityInvalidator
	logger     logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, identities IdentityInvalidator, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		identities: identities,
		logger:     logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, actorID, userID uint) error {
	if actorID == userID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	target, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	uc.identities.Forget(target.Email().String())

	uc.logger.Infow("user deleted", "user_id", userID, "deleted_by", actorID)
	return nil
}
