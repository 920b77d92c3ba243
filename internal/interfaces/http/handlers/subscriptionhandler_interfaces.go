package handlers

import (
	"context"

	subdto "github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type updateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubscriptionsQuery) (*usecases.ListSubscriptionsResult, error)
}

type getMySubscriptionUseCase interface {
	Execute(ctx context.Context, userID uint) (*subdto.SubscriptionDTO, error)
}
