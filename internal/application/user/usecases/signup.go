package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	vo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type SignUpCommand struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	UserType    string
}

// SignUpUseCase registers a self-service account and signs it in.
type SignUpUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenIssuer
	logger         logger.Interface
}

func NewSignUpUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *SignUpUseCase) Execute(ctx context.Context, cmd SignUpCommand) (*dto.AuthResponse, error) {
	role := authorization.UserRole(cmd.UserType)
	if cmd.UserType == "" {
		role = authorization.RoleIndividual
	}
	if !authorization.SelfServiceRoles.Contains(role) {
		return nil, errors.NewValidationError("invalid user type", cmd.UserType)
	}

	newUser, err := newUserWithPassword(ctx, uc.userRepo, uc.passwordHasher, cmd.FullName, cmd.Email, cmd.Password, cmd.PhoneNumber, role)
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to register user", "error", err)
		}
		return nil, err
	}

	token, expiresIn, err := uc.tokens.IssueToken(newUser.Email().String(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "user_type", role.String())

	return &dto.AuthResponse{
		User:        dto.ToUserResponse(newUser),
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// newUserWithPassword validates and persists a user with a hashed password.
func newUserWithPassword(
	ctx context.Context,
	userRepo user.Repository,
	hasher user.PasswordHasher,
	fullName, rawEmail, rawPassword, phone string,
	role authorization.UserRole,
) (*user.User, error) {
	email, err := vo.NewEmail(rawEmail)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	password, err := vo.NewPassword(rawPassword)
	if err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	exists, err := userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	newUser, err := user.NewUser(fullName, email, phone, role)
	if err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}
	if err := newUser.SetPassword(password, hasher); err != nil {
		return nil, err
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		if stderrors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, errors.NewConflictError("email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return newUser, nil
}
