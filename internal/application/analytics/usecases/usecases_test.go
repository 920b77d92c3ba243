package usecases

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/analytics"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// stubAnalytics records the windows and owners it was asked about.
type stubAnalytics struct {
	mu      sync.Mutex
	windows []analytics.Window
	owners  []*uint

	openFn func(w analytics.Window, owner *uint) (int64, error)
	subsFn func(w analytics.Window) ([]analytics.SubscriptionPoint, error)
}

func (s *stubAnalytics) record(w analytics.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = append(s.windows, w)
}

func (s *stubAnalytics) CountOpenProperties(_ context.Context, w analytics.Window, owner *uint) (int64, error) {
	s.record(w)
	s.mu.Lock()
	s.owners = append(s.owners, owner)
	s.mu.Unlock()
	if s.openFn != nil {
		return s.openFn(w, owner)
	}
	return 3, nil
}

func (s *stubAnalytics) CountUnreadMessages(_ context.Context, w analytics.Window, _ uint) (int64, error) {
	s.record(w)
	return 2, nil
}

func (s *stubAnalytics) CountPropertiesByType(_ context.Context, _ analytics.Window) ([]analytics.TypeCount, error) {
	return []analytics.TypeCount{{PropertyTypeID: 1, Count: 4}, {PropertyTypeID: 9, Count: 1}}, nil
}

func (s *stubAnalytics) CountUsers(_ context.Context, _ analytics.Window) (int64, error) {
	return 12, nil
}

func (s *stubAnalytics) Properties(_ context.Context, w analytics.Window) ([]analytics.PropertyPoint, error) {
	s.record(w)
	return []analytics.PropertyPoint{{ID: 1, CreatedAt: w.To, Views: 3}}, nil
}

func (s *stubAnalytics) Subscriptions(_ context.Context, w analytics.Window) ([]analytics.SubscriptionPoint, error) {
	if s.subsFn != nil {
		return s.subsFn(w)
	}
	return nil, nil
}

type stubTypes struct {
	property.TypeRepository
}

func (stubTypes) List(context.Context) ([]*property.Type, error) {
	return []*property.Type{{ID: 1, Name: "Apartment", NameFR: "Appartement", NameAR: "شقة"}}, nil
}

func march() (time.Time, time.Time) {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	from, to := march()

	t.Run("owner sees own listings without previous window", func(t *testing.T) {
		repo := &stubAnalytics{}
		uc := NewGetDashboardUseCase(repo, stubTypes{}, logger.NewNop())

		resp, err := uc.Execute(ctx, DashboardQuery{UserID: 7, Role: authorization.RoleIndividual, To: &to})
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.OpenProperties)
		assert.Equal(t, int64(2), resp.UnreadMessages)
		assert.Nil(t, resp.PreviousOpenProperties)
		assert.Nil(t, resp.NewProperties)

		require.Len(t, repo.owners, 1)
		require.NotNil(t, repo.owners[0])
		assert.Equal(t, uint(7), *repo.owners[0])
	})

	t.Run("bounded window compares with the period before it", func(t *testing.T) {
		repo := &stubAnalytics{openFn: func(w analytics.Window, _ *uint) (int64, error) {
			if w.To.Equal(from) {
				return 1, nil
			}
			return 5, nil
		}}
		uc := NewGetDashboardUseCase(repo, stubTypes{}, logger.NewNop())

		resp, err := uc.Execute(ctx, DashboardQuery{UserID: 7, Role: authorization.RoleAgency, From: &from, To: &to})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.OpenProperties)
		require.NotNil(t, resp.PreviousOpenProperties)
		assert.Equal(t, int64(1), *resp.PreviousOpenProperties)
		require.NotNil(t, resp.PreviousUnreadMessages)
		assert.Equal(t, int64(2), *resp.PreviousUnreadMessages)
	})

	t.Run("staff get every listing by type", func(t *testing.T) {
		repo := &stubAnalytics{}
		uc := NewGetDashboardUseCase(repo, stubTypes{}, logger.NewNop())

		resp, err := uc.Execute(ctx, DashboardQuery{UserID: 1, Role: authorization.RoleEmployee})
		require.NoError(t, err)
		for _, owner := range repo.owners {
			assert.Nil(t, owner)
		}
		require.Len(t, resp.NewProperties, 2)
		require.NotNil(t, resp.NewProperties[0].PropertyType)
		assert.Equal(t, "Appartement", resp.NewProperties[0].PropertyType.NameFR)
		assert.Nil(t, resp.NewProperties[1].PropertyType, "a deleted type still reports its count")
	})

	t.Run("reversed dates", func(t *testing.T) {
		uc := NewGetDashboardUseCase(&stubAnalytics{}, stubTypes{}, logger.NewNop())
		_, err := uc.Execute(ctx, DashboardQuery{UserID: 1, Role: authorization.RoleAdmin, From: &to, To: &from})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &stubAnalytics{openFn: func(analytics.Window, *uint) (int64, error) {
			return 0, stderrors.New("connection reset")
		}}
		uc := NewGetDashboardUseCase(repo, stubTypes{}, logger.NewNop())
		_, err := uc.Execute(ctx, DashboardQuery{UserID: 1, Role: authorization.RoleIndividual})
		require.Error(t, err)
		assert.False(t, errors.IsValidationError(err))
	})
}

func TestGetGeneralStatsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	from, to := march()

	t.Run("requires both dates", func(t *testing.T) {
		uc := NewGetGeneralStatsUseCase(&stubAnalytics{}, logger.NewNop())
		_, err := uc.Execute(ctx, GeneralStatsQuery{To: to})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("current and previous windows", func(t *testing.T) {
		repo := &stubAnalytics{subsFn: func(w analytics.Window) ([]analytics.SubscriptionPoint, error) {
			if w.From.Equal(from) {
				return []analytics.SubscriptionPoint{{CreatedAt: to, Amount: decimal.NewFromInt(2500)}}, nil
			}
			return nil, nil
		}}
		uc := NewGetGeneralStatsUseCase(repo, logger.NewNop())

		resp, err := uc.Execute(ctx, GeneralStatsQuery{From: from, To: to})
		require.NoError(t, err)
		assert.Equal(t, int64(12), resp.UserCount)
		require.Len(t, resp.CurrentProperties, 1)
		assert.Equal(t, to, resp.CurrentProperties[0].CreatedAt)
		require.Len(t, resp.PreviousProperties, 1)
		assert.Equal(t, from, resp.PreviousProperties[0].CreatedAt)
		require.Len(t, resp.CurrentSubscriptions, 1)
		assert.Equal(t, "2500", resp.CurrentSubscriptions[0].TotalAmount.String())
		assert.NotNil(t, resp.PreviousSubscriptions)
		assert.Empty(t, resp.PreviousSubscriptions)
	})
}
