package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/logger"
)

const (
	freePlanKey         = "darna:plan:free"
	defaultFreePlanTTL  = 5 * time.Minute
	freePlanNullTTL     = 30 * time.Second
	freePlanNullPayload = "none"
)

type cachedPlan struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	MaxProperties int             `json:"max_properties"`
	Features      []string        `json:"features"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CachedPlanRepository serves GetFreePlan from Redis. Every gate check for a
// user without a subscription asks for the free plan, so it is the only read
// worth caching. Catalog writes drop the cached entry.
type CachedPlanRepository struct {
	subscription.PlanRepository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedPlanRepository(next subscription.PlanRepository, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedPlanRepository {
	if ttl <= 0 {
		ttl = defaultFreePlanTTL
	}
	return &CachedPlanRepository{
		PlanRepository: next,
		client:         client,
		ttl:            ttl,
		logger:         logger,
	}
}

func (r *CachedPlanRepository) GetFreePlan(ctx context.Context) (*subscription.Plan, error) {
	raw, err := r.client.Get(ctx, freePlanKey).Result()
	switch {
	case err == nil:
		if raw == freePlanNullPayload {
			return nil, nil
		}
		plan, decodeErr := decodePlan(raw)
		if decodeErr == nil {
			return plan, nil
		}
		r.logger.Warnw("discarding undecodable cached free plan", "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		// Redis trouble must not take the gate down; fall through to the store.
		r.logger.Warnw("free plan cache read failed", "error", err)
	}

	plan, err := r.PlanRepository.GetFreePlan(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, plan)
	return plan, nil
}

func (r *CachedPlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	if err := r.PlanRepository.Create(ctx, plan); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

func (r *CachedPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	if err := r.PlanRepository.Update(ctx, plan); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

func (r *CachedPlanRepository) Delete(ctx context.Context, id uint) error {
	if err := r.PlanRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

// Invalidate drops the cached free plan. Failures are logged only; the entry
// expires on its own.
func (r *CachedPlanRepository) Invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, freePlanKey).Err(); err != nil {
		r.logger.Warnw("failed to invalidate free plan cache", "error", err)
		return
	}
	r.logger.Debugw("free plan cache invalidated")
}

func (r *CachedPlanRepository) store(ctx context.Context, plan *subscription.Plan) {
	payload := freePlanNullPayload
	ttl := freePlanNullTTL
	if plan != nil {
		data, err := json.Marshal(encodePlan(plan))
		if err != nil {
			r.logger.Warnw("failed to encode free plan for cache", "error", err)
			return
		}
		payload = string(data)
		ttl = r.ttl
	}

	if err := r.client.Set(ctx, freePlanKey, payload, ttl).Err(); err != nil {
		r.logger.Warnw("failed to cache free plan", "error", err)
	}
}

func encodePlan(p *subscription.Plan) cachedPlan {
	return cachedPlan{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		MaxProperties: p.MaxProperties(),
		Features:      p.Features().Strings(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func decodePlan(raw string) (*subscription.Plan, error) {
	var c cachedPlan
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached plan: %w", err)
	}

	var features *vo.FeatureSet
	if c.Features != nil {
		set, err := vo.NewFeatureSet(c.Features...)
		if err != nil {
			return nil, err
		}
		features = set
	}

	return subscription.ReconstructPlan(c.ID, c.Name, c.Description, c.Price, c.MaxProperties, features, c.CreatedAt, c.UpdatedAt)
}
