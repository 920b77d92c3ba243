package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/domain/user"
	uservo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/shared/authorization"
	apperrors "github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

var fixedNow = time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

func storedSubscription(t *testing.T, id, userID, planID uint, status vo.SubscriptionStatus) *subscription.Subscription {
	t.Helper()
	method := vo.PaymentMethodBankTransfer
	sub, err := subscription.ReconstructSubscription(id, userID, planID, status,
		fixedNow, fixedNow.AddDate(0, 1, 0), &method, "ref 42", "https://proof.example/a.png", fixedNow, fixedNow)
	require.NoError(t, err)
	return sub
}

func TestCreateSubscriptionUseCase_Execute(t *testing.T) {
	t.Run("creates inactive request with calendar end date", func(t *testing.T) {
		plans := new(mockPlanRepository)
		subs := new(mockSubscriptionRepository)
		plans.On("GetByID", mock.Anything, uint(2)).Return(existingPlan(t, 2, 4900, "properties"), nil)
		subs.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).
			Run(func(args mock.Arguments) {
				_ = args.Get(1).(*subscription.Subscription).SetID(11)
			}).
			Return(nil)

		uc := NewCreateSubscriptionUseCase(subs, plans, logger.NewNop())
		uc.now = func() time.Time { return fixedNow }

		result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
			UserID:         5,
			PlanID:         2,
			PaymentMethod:  "baridimob",
			ProofOfPayment: "https://proof.example/receipt.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), result.ID)
		assert.Equal(t, "inactive", result.Status)
		assert.Equal(t, fixedNow, result.StartDate)
		// Jan 31 + 1 month normalises to Mar 2 in a leap year.
		assert.Equal(t, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), result.EndDate)
		require.NotNil(t, result.PaymentMethod)
		assert.Equal(t, "baridimob", *result.PaymentMethod)
		require.NotNil(t, result.Plan)
		assert.Equal(t, uint(2), result.Plan.ID)
	})

	t.Run("explicit start and period", func(t *testing.T) {
		plans := new(mockPlanRepository)
		subs := new(mockSubscriptionRepository)
		plans.On("GetByID", mock.Anything, uint(2)).Return(existingPlan(t, 2, 4900), nil)
		subs.On("Create", mock.Anything, mock.Anything).Return(nil)

		start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		uc := NewCreateSubscriptionUseCase(subs, plans, logger.NewNop())
		result, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
			UserID:        5,
			PlanID:        2,
			PaymentMethod: "e_payment",
			StartDate:     &start,
			PeriodMonths:  12,
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), result.EndDate)
	})

	t.Run("unknown plan", func(t *testing.T) {
		plans := new(mockPlanRepository)
		subs := new(mockSubscriptionRepository)
		plans.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

		uc := NewCreateSubscriptionUseCase(subs, plans, logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
			UserID: 5, PlanID: 99, PaymentMethod: "baridimob",
		})

		assert.True(t, apperrors.IsNotFoundError(err))
		subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		uc := NewCreateSubscriptionUseCase(new(mockSubscriptionRepository), new(mockPlanRepository), logger.NewNop())
		_, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
			UserID: 5, PlanID: 2, PaymentMethod: "cash",
		})

		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUpdateSubscriptionUseCase_Execute(t *testing.T) {
	active := "active"

	t.Run("activates inactive subscription", func(t *testing.T) {
		sub := storedSubscription(t, 4, 5, 2, vo.StatusInactive)
		subs := new(mockSubscriptionRepository)
		subs.On("GetByID", mock.Anything, uint(4)).Return(sub, nil)
		subs.On("Update", mock.Anything, sub, vo.StatusInactive).Return(nil)

		uc := NewUpdateSubscriptionUseCase(subs, logger.NewNop())
		result, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{ID: 4, Status: &active})

		require.NoError(t, err)
		assert.Equal(t, "active", result.Status)
	})

	t.Run("user already has an active subscription", func(t *testing.T) {
		sub := storedSubscription(t, 4, 5, 2, vo.StatusInactive)
		subs := new(mockSubscriptionRepository)
		subs.On("GetByID", mock.Anything, uint(4)).Return(sub, nil)
		subs.On("Update", mock.Anything, sub, vo.StatusInactive).Return(subscription.ErrActiveSubscriptionExists)

		uc := NewUpdateSubscriptionUseCase(subs, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{ID: 4, Status: &active})

		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("expired cannot be reactivated", func(t *testing.T) {
		sub := storedSubscription(t, 4, 5, 2, vo.StatusExpired)
		subs := new(mockSubscriptionRepository)
		subs.On("GetByID", mock.Anything, uint(4)).Return(sub, nil)

		uc := NewUpdateSubscriptionUseCase(subs, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{ID: 4, Status: &active})

		assert.True(t, apperrors.IsValidationError(err))
		subs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("payment details only", func(t *testing.T) {
		sub := storedSubscription(t, 4, 5, 2, vo.StatusInactive)
		subs := new(mockSubscriptionRepository)
		subs.On("GetByID", mock.Anything, uint(4)).Return(sub, nil)
		subs.On("Update", mock.Anything, sub, vo.StatusInactive).Return(nil)

		details := "CCP 0012345 key 67"
		uc := NewUpdateSubscriptionUseCase(subs, logger.NewNop())
		result, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{ID: 4, PaymentDetails: &details})

		require.NoError(t, err)
		assert.Equal(t, details, result.PaymentDetails)
		assert.Equal(t, "inactive", result.Status)
	})

	t.Run("row expired after it was read", func(t *testing.T) {
		sub := storedSubscription(t, 4, 5, 2, vo.StatusActive)
		subs := new(mockSubscriptionRepository)
		subs.On("GetByID", mock.Anything, uint(4)).Return(sub, nil)
		subs.On("Update", mock.Anything, sub, vo.StatusActive).Return(subscription.ErrSubscriptionModified)

		details := "virement 42"
		uc := NewUpdateSubscriptionUseCase(subs, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{ID: 4, PaymentDetails: &details})

		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("not found", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		subs.On("GetByID", mock.Anything, uint(4)).Return(nil, nil)

		uc := NewUpdateSubscriptionUseCase(subs, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateSubscriptionCommand{ID: 4, Status: &active})

		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestListSubscriptionsUseCase_Execute(t *testing.T) {
	t.Run("enriches with plans and owners", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		plans := new(mockPlanRepository)

		status := vo.StatusActive
		method := vo.PaymentMethodBaridiMob
		subs.On("List", mock.Anything, mock.MatchedBy(func(f subscription.SubscriptionFilter) bool {
			return f.Status != nil && *f.Status == status &&
				f.PaymentMethod != nil && *f.PaymentMethod == method &&
				f.UserQuery == "amina" && f.Limit == 20
		})).Return([]*subscription.Subscription{
			storedSubscription(t, 1, 5, 2, vo.StatusActive),
			storedSubscription(t, 2, 6, 2, vo.StatusActive),
		}, int64(2), nil)
		plans.On("GetByID", mock.Anything, uint(2)).Return(existingPlan(t, 2, 4900), nil).Once()

		email, err := uservo.NewEmail("amina@example.dz")
		require.NoError(t, err)
		owner, err := user.ReconstructUser(5, "Amina B.", email, "0550000000", authorization.RoleAgency, "", fixedNow, fixedNow)
		require.NoError(t, err)

		var requested []uint
		users := &mockUserRepository{getByIDsFunc: func(_ context.Context, ids []uint) ([]*user.User, error) {
			requested = ids
			return []*user.User{owner}, nil
		}}

		uc := NewListSubscriptionsUseCase(subs, plans, users, logger.NewNop())
		result, err := uc.Execute(context.Background(), ListSubscriptionsQuery{
			Status:        "active",
			PaymentMethod: "baridimob",
			Query:         "amina",
			Limit:         20,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
		assert.ElementsMatch(t, []uint{5, 6}, requested)
		require.Len(t, result.Subscriptions, 2)
		require.NotNil(t, result.Subscriptions[0].User)
		assert.Equal(t, "Amina B.", result.Subscriptions[0].User.FullName)
		assert.Nil(t, result.Subscriptions[1].User)
		assert.Equal(t, uint(2), result.Subscriptions[1].Plan.ID)
		plans.AssertExpectations(t)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := NewListSubscriptionsUseCase(new(mockSubscriptionRepository), new(mockPlanRepository),
			&mockUserRepository{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), ListSubscriptionsQuery{Status: "paused"})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestGetMySubscriptionUseCase_Execute(t *testing.T) {
	t.Run("returns active subscription with plan", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		plans := new(mockPlanRepository)
		subs.On("FindActiveByUserID", mock.Anything, uint(5)).Return(storedSubscription(t, 1, 5, 2, vo.StatusActive), nil)
		plans.On("GetByID", mock.Anything, uint(2)).Return(existingPlan(t, 2, 0, "chat"), nil)

		uc := NewGetMySubscriptionUseCase(subs, plans, logger.NewNop())
		result, err := uc.Execute(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"chat"}, result.Plan.Features)
	})

	t.Run("no active subscription", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		subs.On("FindActiveByUserID", mock.Anything, uint(5)).Return(nil, nil)

		uc := NewGetMySubscriptionUseCase(subs, new(mockPlanRepository), logger.NewNop())
		_, err := uc.Execute(context.Background(), 5)

		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

type sweepRecord struct {
	expired int64
	err     error
	calls   int
}

func (r *sweepRecord) RecordSweep(expired int64, err error) {
	r.calls++
	r.expired = expired
	r.err = err
}

func TestExpireSubscriptionsUseCase_Execute(t *testing.T) {
	t.Run("passes configured condition and clock", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		subs.On("ExpirePaid", mock.Anything, subscription.SweepCriteria{
			Now:       fixedNow,
			Condition: subscription.SweepLiteral,
		}).Return(int64(3), nil)
		recorder := &sweepRecord{}

		uc := NewExpireSubscriptionsUseCase(subs, subscription.SweepLiteral, recorder, logger.NewNop()).
			WithClock(func() time.Time { return fixedNow })
		count, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, int64(3), recorder.expired)
		subs.AssertExpectations(t)
	})

	t.Run("defaults to past due", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		subs.On("ExpirePaid", mock.Anything, mock.MatchedBy(func(c subscription.SweepCriteria) bool {
			return c.Condition == subscription.SweepPastDue
		})).Return(int64(0), nil)

		uc := NewExpireSubscriptionsUseCase(subs, "", nil, logger.NewNop())
		count, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("store failure is reported once", func(t *testing.T) {
		subs := new(mockSubscriptionRepository)
		subs.On("ExpirePaid", mock.Anything, mock.Anything).Return(int64(0), errors.New("deadlock")).Once()
		recorder := &sweepRecord{}

		uc := NewExpireSubscriptionsUseCase(subs, subscription.SweepPastDue, recorder, logger.NewNop())
		_, err := uc.Execute(context.Background())

		require.Error(t, err)
		assert.Error(t, recorder.err)
		subs.AssertNumberOfCalls(t, "ExpirePaid", 1)
	})
}
