package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	vo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordUseCase replaces the caller's password and hands back a
// fresh token.
type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	identities     IdentityInvalidator
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	identities IdentityInvalidator,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		identities:     identities,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) (*dto.AuthResponse, error) {
	if cmd.NewPassword != cmd.ConfirmPassword {
		return nil, errors.NewValidationError("passwords do not match")
	}
	password, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	// The caller is signed in, so a wrong password is a bad request rather than a 401.
	if err := u.VerifyPassword(cmd.OldPassword, uc.passwordHasher); err != nil {
		uc.logger.Warnw("password change with wrong current password", "user_id", u.ID())
		return nil, errors.NewValidationError("incorrect password")
	}
	if err := u.SetPassword(password, uc.passwordHasher); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to save password", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to save password: %w", err)
	}
	uc.identities.Forget(u.Email().String())

	token, expiresIn, err := uc.tokens.IssueToken(u.Email().String(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("password changed", "user_id", u.ID())
	return &dto.AuthResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
