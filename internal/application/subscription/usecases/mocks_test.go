package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/domain/user"
)

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Plan), args.Error(1)
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPlanRepository) List(ctx context.Context, filter subscription.PlanFilter) ([]*subscription.Plan, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*subscription.Plan), args.Get(1).(int64), args.Error(2)
}

func (m *mockPlanRepository) GetFreePlan(ctx context.Context) (*subscription.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Plan), args.Error(1)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription, from vo.SubscriptionStatus) error {
	args := m.Called(ctx, sub, from)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) FindActiveByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) ClaimActive(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) ExpireIfActive(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepository) ExpirePaid(ctx context.Context, criteria subscription.SweepCriteria) (int64, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.SubscriptionFilter) ([]*subscription.Subscription, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*subscription.Subscription), args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionRepository) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(int64), args.Error(1)
}

// mockUserRepository is a func-field mock; only GetByIDs is exercised here.
type mockUserRepository struct {
	getByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }
func (m *mockUserRepository) GetByID(context.Context, uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) Update(context.Context, *user.User) error { return nil }
func (m *mockUserRepository) Delete(context.Context, uint) error       { return nil }
func (m *mockUserRepository) List(context.Context, user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return nil, nil
}
