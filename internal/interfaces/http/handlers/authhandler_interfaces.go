package handlers

import (
	"context"

	userdto "github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler

type signUpUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignUpCommand) (*userdto.AuthResponse, error)
}

type signInUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignInCommand) (*userdto.AuthResponse, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.UserResponse, error)
}
