package usecases

import (
	"context"
	"fmt"

	"github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/mapper"
)

type ListUsersQuery struct {
	Query     string
	UserTypes []string
	Offset    int
	Limit     int
}

type ListUsersResult struct {
	Users []*dto.UserResponse
	Total int64
}

// ListUsersUseCase searches accounts for the back office, newest first.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	filter := user.ListFilter{
		Query:  query.Query,
		Offset: query.Offset,
		Limit:  query.Limit,
	}
	for _, t := range query.UserTypes {
		role := authorization.UserRole(t)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid user type", t)
		}
		filter.Roles = append(filter.Roles, role)
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersResult{
		Users: mapper.MapSlice(users, dto.ToUserResponse),
		Total: total,
	}, nil
}
