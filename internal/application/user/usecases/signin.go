package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type SignInCommand struct {
	Email    string
	Password string
}

type SignInUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	logger         logger.Interface
}

func NewSignInUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password are indistinguishable to the client.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := existing.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("failed sign-in attempt", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.IssueToken(existing.Email().String(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user signed in", "user_id", existing.ID())

	return &dto.AuthResponse{
		User:        dto.ToUserResponse(existing),
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
