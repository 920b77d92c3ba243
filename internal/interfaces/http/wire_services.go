package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	subscriptionServices "github.com/darna-inc/darna/internal/application/subscription/services"
	subscriptionUsecases "github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/domain/shared/events"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/infrastructure/auth"
	"github.com/darna-inc/darna/internal/infrastructure/cache"
	"github.com/darna-inc/darna/internal/infrastructure/config"
	"github.com/darna-inc/darna/internal/infrastructure/metrics"
	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/infrastructure/pubsub"
	"github.com/darna-inc/darna/internal/infrastructure/ratelimit"
	"github.com/darna-inc/darna/internal/infrastructure/realtime"
	"github.com/darna-inc/darna/internal/infrastructure/scheduler"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
	"github.com/darna-inc/darna/internal/shared/logger"
)

const domainEventBuffer = 256

// initInfrastructure sets up Redis, repositories, token verification, the
// policy enforcer and the request middlewares that only depend on those.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	} else {
		log.Warnw("Redis disabled, running without plan cache, rate limiting and cross-instance notifications")
	}

	c.repos = newRepositories(c.db, log)
	c.metrics = metrics.New()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.identities = cache.NewIdentityCache(
		c.repos.userRepo,
		cfg.Auth.IdentityCacheSize,
		time.Duration(cfg.Auth.IdentityCacheSeconds)*time.Second,
	)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.identities, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)

	if c.redis != nil && cfg.RateLimit.Enabled {
		c.authRateLimiter = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.Limit{
				Requests: cfg.RateLimit.AuthRequests,
				Window:   time.Duration(cfg.RateLimit.AuthWindowSeconds) * time.Second,
			},
			log,
		)
	}

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// initRealtime creates the websocket registry, the cross-instance bus and the
// domain event dispatcher.
func (c *Container) initRealtime() {
	c.registry = realtime.NewRegistry(c.log)
	if c.redis != nil {
		c.bus = pubsub.NewRedisNotificationBus(c.redis, c.cfg.Realtime.Channel, c.log)
		c.registry.SetBus(c.bus)
	}

	c.metrics.RegisterGauge("darna_realtime_connections", "Open websocket connections on this instance.", func() float64 {
		return float64(c.registry.ConnectionCount())
	})

	c.dispatcher = events.NewInMemoryEventDispatcher(domainEventBuffer, c.log)
}

// initSubscription wires the plan cache, the access gate and the expiry
// sweeper with its daily schedule.
func (c *Container) initSubscription() error {
	cfg := c.cfg

	if c.redis != nil {
		c.repos.planRepo = cache.NewCachedPlanRepository(
			c.repos.planRepo, c.redis, cfg.Subscription.FreePlanCacheTTL(), c.log,
		)
	}

	c.gate = subscriptionServices.NewAccessGate(
		c.repos.subscriptionRepo,
		c.repos.planRepo,
		c.repos.propertyRepo,
		subscriptionServices.AccessGateConfig{
			FreePlanPeriodMonths:  cfg.Subscription.FreePlanPeriodMonths,
			ExpiryLookaheadMonths: cfg.Subscription.ExpiryLookaheadMonths,
		},
		c.metrics,
		c.log,
	)
	c.gateMiddleware = middleware.NewSubscriptionGateMiddleware(c.gate, c.log)

	c.sweeper = subscriptionUsecases.NewExpireSubscriptionsUseCase(
		c.repos.subscriptionRepo,
		subscription.SweepCondition(cfg.Subscription.SweepCondition),
		c.metrics,
		c.log,
	)

	if !cfg.Scheduler.Enabled {
		return nil
	}
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterSweepJob(c.sweeper, cfg.Scheduler.SweepAt, cfg.Scheduler.RunOnStart); err != nil {
		return fmt.Errorf("failed to register sweep job: %w", err)
	}
	c.schedulerManager = manager
	return nil
}
