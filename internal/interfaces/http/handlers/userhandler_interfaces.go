package handlers

import (
	"context"

	userdto "github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/application/user/usecases"
)

// Use case interfaces for UserHandler

type getProfileUseCase interface {
	Execute(ctx context.Context, userID uint) (*userdto.ProfileResponse, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*userdto.ProfileResponse, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) (*userdto.AuthResponse, error)
}

type updateNotificationSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateNotificationSettingsCommand) (*userdto.NotificationSettingsResponse, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type createUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*userdto.UserResponse, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, actorID, userID uint) error
}
