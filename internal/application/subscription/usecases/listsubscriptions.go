package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type ListSubscriptionsQuery struct {
	UserID        *uint
	PlanID        *uint
	Status        string
	PaymentMethod string
	StartFrom     *time.Time
	EndUntil      *time.Time
	// Query matches the owner's name, email or phone number.
	Query  string
	Offset int
	Limit  int
}

type ListSubscriptionsResult struct {
	Subscriptions []*dto.SubscriptionDTO
	Total         int64
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*ListSubscriptionsResult, error) {
	filter := subscription.SubscriptionFilter{
		UserID:    query.UserID,
		PlanID:    query.PlanID,
		StartFrom: query.StartFrom,
		EndUntil:  query.EndUntil,
		UserQuery: query.Query,
		Offset:    query.Offset,
		Limit:     query.Limit,
	}
	if query.Status != "" {
		status := vo.SubscriptionStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status", query.Status)
		}
		filter.Status = &status
	}
	if query.PaymentMethod != "" {
		method := vo.PaymentMethod(query.PaymentMethod)
		if !method.IsValid() {
			return nil, errors.NewValidationError("invalid payment method", query.PaymentMethod)
		}
		filter.PaymentMethod = &method
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	plans, err := uc.loadPlans(ctx, subs)
	if err != nil {
		return nil, err
	}
	owners, err := uc.loadOwners(ctx, subs)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		items = append(items, dto.ToSubscriptionDTO(sub, plans[sub.PlanID()], owners[sub.UserID()]))
	}

	return &ListSubscriptionsResult{
		Subscriptions: items,
		Total:         total,
	}, nil
}

func (uc *ListSubscriptionsUseCase) loadPlans(ctx context.Context, subs []*subscription.Subscription) (map[uint]*subscription.Plan, error) {
	plans := make(map[uint]*subscription.Plan)
	for _, sub := range subs {
		if _, ok := plans[sub.PlanID()]; ok {
			continue
		}
		plan, err := uc.planRepo.GetByID(ctx, sub.PlanID())
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "plan_id", sub.PlanID())
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
		plans[sub.PlanID()] = plan
	}
	return plans, nil
}

func (uc *ListSubscriptionsUseCase) loadOwners(ctx context.Context, subs []*subscription.Subscription) (map[uint]*user.User, error) {
	owners := make(map[uint]*user.User)
	if len(subs) == 0 {
		return owners, nil
	}

	ids := make([]uint, 0, len(subs))
	seen := make(map[uint]bool, len(subs))
	for _, sub := range subs {
		if !seen[sub.UserID()] {
			seen[sub.UserID()] = true
			ids = append(ids, sub.UserID())
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to get subscription owners", "error", err)
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for _, u := range users {
		owners[u.ID()] = u
	}
	return owners, nil
}
