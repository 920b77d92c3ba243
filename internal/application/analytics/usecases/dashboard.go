package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/darna-inc/darna/internal/application/analytics/dto"
	"github.com/darna-inc/darna/internal/domain/analytics"
	"github.com/darna-inc/darna/internal/domain/property"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type DashboardQuery struct {
	UserID uint
	Role   authorization.UserRole
	From   *time.Time
	To     *time.Time
}

// GetDashboardUseCase returns the counters of the caller's dashboard. Staff
// see every listing plus a breakdown by property type.
type GetDashboardUseCase struct {
	repo     analytics.Repository
	typeRepo property.TypeRepository
	logger   logger.Interface
}

func NewGetDashboardUseCase(repo analytics.Repository, typeRepo property.TypeRepository, log logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		repo:     repo,
		typeRepo: typeRepo,
		logger:   log,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query DashboardQuery) (*dto.DashboardResponse, error) {
	w, err := windowOf(query.From, query.To)
	if err != nil {
		return nil, err
	}

	var owner *uint
	if !query.Role.IsPrivileged() {
		owner = &query.UserID
	}

	resp := &dto.DashboardResponse{}
	var (
		prevOpen, prevUnread int64
		byType               []analytics.TypeCount
		types                []*property.Type
	)
	prev, hasPrev := w.Previous()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.repo.CountOpenProperties(gctx, w, owner)
		resp.OpenProperties = n
		return err
	})
	g.Go(func() error {
		n, err := uc.repo.CountUnreadMessages(gctx, w, query.UserID)
		resp.UnreadMessages = n
		return err
	})

	if hasPrev {
		g.Go(func() error {
			n, err := uc.repo.CountOpenProperties(gctx, prev, owner)
			prevOpen = n
			return err
		})
		g.Go(func() error {
			n, err := uc.repo.CountUnreadMessages(gctx, prev, query.UserID)
			prevUnread = n
			return err
		})
	}

	if query.Role.IsPrivileged() {
		g.Go(func() error {
			counts, err := uc.repo.CountPropertiesByType(gctx, w)
			byType = counts
			return err
		})
		g.Go(func() error {
			list, err := uc.typeRepo.List(gctx)
			types = list
			return err
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to compute dashboard", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to compute dashboard")
	}

	if hasPrev {
		resp.PreviousOpenProperties = &prevOpen
		resp.PreviousUnreadMessages = &prevUnread
	}
	if query.Role.IsPrivileged() {
		byID := make(map[uint]*property.Type, len(types))
		for _, t := range types {
			byID[t.ID] = t
		}
		resp.NewProperties = make([]*dto.TypeCountResponse, 0, len(byType))
		for _, c := range byType {
			resp.NewProperties = append(resp.NewProperties, dto.ToTypeCountResponse(c, byID[c.PropertyTypeID]))
		}
	}
	return resp, nil
}

func windowOf(from, to *time.Time) (analytics.Window, error) {
	var f, t time.Time
	if from != nil {
		f = from.UTC()
	}
	if to != nil {
		t = to.UTC()
	}
	w, err := analytics.NewWindow(f, t)
	if stderrors.Is(err, analytics.ErrInvalidWindow) {
		return analytics.Window{}, errors.NewValidationError(err.Error())
	}
	return w, err
}
