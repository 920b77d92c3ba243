// Package services holds the subscription access gate, which decides whether
// a caller may use a set of plan features.
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Denial reasons returned to clients.
const (
	ReasonNoSubscription = "no subscription available"
	ReasonExpired        = "subscription expired"
	ReasonNoFeatures     = "plan has no allowed features"
	ReasonQuotaExceeded  = "quota exceeded"
	reasonFeaturePrefix  = "feature denied: "
)

// Machine-readable reason codes, used for logs and metrics.
const (
	CodeAdmitted         = "admitted"
	CodeNoSubscription   = "no_subscription_available"
	CodeExpired          = "subscription_expired"
	CodeNoFeatures       = "plan_has_no_features"
	CodeFeatureDenied    = "feature_denied"
	CodeQuotaExceeded    = "quota_exceeded"
	CodePrivilegedBypass = "privileged"
)

// PropertyCounter counts the listings a user currently owns.
type PropertyCounter interface {
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// DecisionRecorder observes gate outcomes.
type DecisionRecorder interface {
	RecordDecision(code string)
}

type Caller struct {
	ID   uint
	Role authorization.UserRole
}

// Decision is the gate outcome. Subscription and Plan are set whenever the
// caller was resolved to a subscription.
type Decision struct {
	Admitted     bool
	Reason       string
	Code         string
	Subscription *subscription.Subscription
	Plan         *subscription.Plan
}

func admit(sub *subscription.Subscription, plan *subscription.Plan) *Decision {
	return &Decision{Admitted: true, Code: CodeAdmitted, Subscription: sub, Plan: plan}
}

func deny(code, reason string, sub *subscription.Subscription, plan *subscription.Plan) *Decision {
	return &Decision{Code: code, Reason: reason, Subscription: sub, Plan: plan}
}

type AccessGateConfig struct {
	// FreePlanPeriodMonths is the length of an auto-provisioned free subscription.
	FreePlanPeriodMonths int
	// ExpiryLookaheadMonths shifts now forward before comparing with the
	// end date of a paid subscription.
	ExpiryLookaheadMonths int
}

// AccessGate evaluates a caller against the features a route requires.
// Store failures are returned as errors and never turned into a denial.
type AccessGate struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	properties       PropertyCounter
	cfg              AccessGateConfig
	now              func() time.Time
	provisioning     singleflight.Group
	recorder         DecisionRecorder
	logger           logger.Interface
}

func NewAccessGate(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	properties PropertyCounter,
	cfg AccessGateConfig,
	recorder DecisionRecorder,
	logger logger.Interface,
) *AccessGate {
	if cfg.FreePlanPeriodMonths < 1 {
		cfg.FreePlanPeriodMonths = 1
	}
	if cfg.ExpiryLookaheadMonths < 0 {
		cfg.ExpiryLookaheadMonths = 0
	}
	return &AccessGate{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		properties:       properties,
		cfg:              cfg,
		now:              biztime.NowUTC,
		recorder:         recorder,
		logger:           logger,
	}
}

// WithClock replaces the wall clock, for tests.
func (g *AccessGate) WithClock(now func() time.Time) *AccessGate {
	g.now = now
	return g
}

// Check runs the gate for caller against required.
func (g *AccessGate) Check(ctx context.Context, caller Caller, required ...vo.FeatureTag) (*Decision, error) {
	decision, err := g.check(ctx, caller, required)
	if err != nil {
		return nil, err
	}
	if g.recorder != nil {
		g.recorder.RecordDecision(decision.Code)
	}
	return decision, nil
}

func (g *AccessGate) check(ctx context.Context, caller Caller, required []vo.FeatureTag) (*Decision, error) {
	if caller.Role.IsPrivileged() {
		return &Decision{Admitted: true, Code: CodePrivilegedBypass}, nil
	}

	sub, plan, err := g.resolve(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		g.logger.Errorw("no free plan configured, denying gated request",
			"reason_code", CodeNoSubscription,
			"user_id", caller.ID,
		)
		return deny(CodeNoSubscription, ReasonNoSubscription, nil, nil), nil
	}

	now := g.now()
	if !plan.IsFree() && sub.IsStaleAt(now, g.cfg.ExpiryLookaheadMonths) {
		if sub.IsPastDueAt(now) {
			if err := g.expire(ctx, sub); err != nil {
				return nil, err
			}
		}
		return deny(CodeExpired, ReasonExpired, sub, plan), nil
	}

	if !plan.HasAnyFeatures() {
		return deny(CodeNoFeatures, ReasonNoFeatures, sub, plan), nil
	}

	wanted := make(map[vo.FeatureTag]bool, len(required))
	for _, tag := range required {
		if !tag.IsValid() {
			// Unknown tags can only come from a miswired route.
			return deny(CodeFeatureDenied, reasonFeaturePrefix+tag.String(), sub, plan), nil
		}
		wanted[tag] = true
	}

	// Tags are evaluated in catalog order so that a route requiring several
	// features always reports the same denial.
	for _, tag := range vo.AllFeatures {
		if !wanted[tag] {
			continue
		}

		if !plan.HasFeature(tag) {
			return deny(CodeFeatureDenied, reasonFeaturePrefix+tag.String(), sub, plan), nil
		}
		if tag == vo.FeatureProperties {
			count, err := g.properties.CountByUserID(ctx, caller.ID)
			if err != nil {
				g.logger.Errorw("failed to count properties", "error", err, "user_id", caller.ID)
				return nil, fmt.Errorf("failed to count properties: %w", err)
			}
			if count >= int64(plan.MaxProperties()) {
				return deny(CodeQuotaExceeded, ReasonQuotaExceeded, sub, plan), nil
			}
		}
	}

	return admit(sub, plan), nil
}

// resolve returns the caller's gating subscription and its plan, creating a
// free subscription when the caller has none. A nil subscription with a nil
// error means no free plan exists.
func (g *AccessGate) resolve(ctx context.Context, userID uint) (*subscription.Subscription, *subscription.Plan, error) {
	sub, err := g.subscriptionRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		g.logger.Errorw("failed to find active subscription", "error", err, "user_id", userID)
		return nil, nil, fmt.Errorf("failed to find active subscription: %w", err)
	}
	if sub != nil {
		plan, err := g.planFor(ctx, sub)
		if err != nil {
			return nil, nil, err
		}
		return sub, plan, nil
	}

	// Callers waiting on the same key share this work, so it must outlive the
	// request that started it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := g.provisioning.Do(strconv.FormatUint(uint64(userID), 10), func() (interface{}, error) {
		sub, plan, err := g.provisionFree(shared, userID)
		if err != nil {
			return nil, err
		}
		return &resolved{sub: sub, plan: plan}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	r := v.(*resolved)
	return r.sub, r.plan, nil
}

type resolved struct {
	sub  *subscription.Subscription
	plan *subscription.Plan
}

func (g *AccessGate) provisionFree(ctx context.Context, userID uint) (*subscription.Subscription, *subscription.Plan, error) {
	freePlan, err := g.planRepo.GetFreePlan(ctx)
	if err != nil {
		g.logger.Errorw("failed to get free plan", "error", err)
		return nil, nil, fmt.Errorf("failed to get free plan: %w", err)
	}
	if freePlan == nil {
		return nil, nil, nil
	}

	sub, err := subscription.NewFreeSubscription(userID, freePlan.ID(), g.now(), g.cfg.FreePlanPeriodMonths)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build free subscription: %w", err)
	}

	err = g.subscriptionRepo.ClaimActive(ctx, sub)
	if err == nil {
		g.logger.Infow("free subscription provisioned",
			"subscription_id", sub.ID(),
			"user_id", userID,
			"plan_id", freePlan.ID(),
			"end_date", sub.EndDate(),
		)
		return sub, freePlan, nil
	}
	if !stderrors.Is(err, subscription.ErrActiveSubscriptionExists) {
		g.logger.Errorw("failed to provision free subscription", "error", err, "user_id", userID)
		return nil, nil, fmt.Errorf("failed to provision free subscription: %w", err)
	}

	// Another instance activated a subscription first; use theirs.
	winner, err := g.subscriptionRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find active subscription: %w", err)
	}
	if winner == nil {
		return nil, nil, fmt.Errorf("active subscription for user %d vanished after claim conflict", userID)
	}
	plan, err := g.planFor(ctx, winner)
	if err != nil {
		return nil, nil, err
	}
	return winner, plan, nil
}

func (g *AccessGate) planFor(ctx context.Context, sub *subscription.Subscription) (*subscription.Plan, error) {
	plan, err := g.planRepo.GetByID(ctx, sub.PlanID())
	if err != nil {
		g.logger.Errorw("failed to get plan", "error", err, "plan_id", sub.PlanID())
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("plan %d of subscription %d: %w", sub.PlanID(), sub.ID(), subscription.ErrPlanNotFound)
	}
	return plan, nil
}

func (g *AccessGate) expire(ctx context.Context, sub *subscription.Subscription) error {
	expired, err := g.subscriptionRepo.ExpireIfActive(ctx, sub.ID())
	if err != nil {
		g.logger.Errorw("failed to expire subscription", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to expire subscription: %w", err)
	}
	if expired {
		_ = sub.MarkAsExpired()
		g.logger.Infow("subscription expired at gate",
			"subscription_id", sub.ID(),
			"user_id", sub.UserID(),
			"end_date", sub.EndDate(),
		)
	}
	return nil
}
