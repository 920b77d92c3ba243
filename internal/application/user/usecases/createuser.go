package usecases

import (
	"context"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type CreateUserCommand struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	Role        authorization.UserRole
}

// CreateUserUseCase creates accounts on behalf of an operator, restricted
// to a set of roles. The command line creates staff; the back office may
// create any account type.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	allowed        authorization.RoleSet
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	allowed authorization.RoleSet,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		allowed:        allowed,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error) {
	if !uc.allowed.Contains(cmd.Role) {
		return nil, errors.NewValidationError("role not allowed here", cmd.Role.String())
	}

	created, err := newUserWithPassword(ctx, uc.userRepo, uc.passwordHasher, cmd.FullName, cmd.Email, cmd.Password, cmd.PhoneNumber, cmd.Role)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create account", "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("account created", "user_id", created.ID(), "role", cmd.Role.String())
	return dto.ToUserResponse(created), nil
}
