package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/darna-inc/darna/internal/application/analytics/dto"
	"github.com/darna-inc/darna/internal/domain/analytics"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/mapper"
)

type GeneralStatsQuery struct {
	From time.Time
	To   time.Time
}

// GetGeneralStatsUseCase builds the back office charts: sign-ups, listings
// and subscriptions of a window next to the window before it.
type GetGeneralStatsUseCase struct {
	repo   analytics.Repository
	logger logger.Interface
}

func NewGetGeneralStatsUseCase(repo analytics.Repository, log logger.Interface) *GetGeneralStatsUseCase {
	return &GetGeneralStatsUseCase{repo: repo, logger: log}
}

func (uc *GetGeneralStatsUseCase) Execute(ctx context.Context, query GeneralStatsQuery) (*dto.GeneralStatsResponse, error) {
	if query.From.IsZero() || query.To.IsZero() {
		return nil, errors.NewValidationError("start_date and end_date are required")
	}
	w, err := windowOf(&query.From, &query.To)
	if err != nil {
		return nil, err
	}
	prev, _ := w.Previous()

	var (
		users               int64
		curProps, prevProps []analytics.PropertyPoint
		curSubs, prevSubs   []analytics.SubscriptionPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = uc.repo.CountUsers(gctx, w)
		return err
	})
	g.Go(func() (err error) {
		curProps, err = uc.repo.Properties(gctx, w)
		return err
	})
	g.Go(func() (err error) {
		prevProps, err = uc.repo.Properties(gctx, prev)
		return err
	})
	g.Go(func() (err error) {
		curSubs, err = uc.repo.Subscriptions(gctx, w)
		return err
	})
	g.Go(func() (err error) {
		prevSubs, err = uc.repo.Subscriptions(gctx, prev)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to compute general stats", "error", err)
		return nil, errors.NewInternalError("failed to compute general stats")
	}

	return &dto.GeneralStatsResponse{
		UserCount:             users,
		CurrentProperties:     mapper.MapSlice(curProps, dto.ToPropertyPointResponse),
		PreviousProperties:    mapper.MapSlice(prevProps, dto.ToPropertyPointResponse),
		CurrentSubscriptions:  mapper.MapSlice(curSubs, dto.ToSubscriptionPointResponse),
		PreviousSubscriptions: mapper.MapSlice(prevSubs, dto.ToSubscriptionPointResponse),
	}, nil
}
