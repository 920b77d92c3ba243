package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/application/notification"
	subscriptionServices "github.com/darna-inc/darna/internal/application/subscription/services"
	subscriptionUsecases "github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/domain/shared/events"
	"github.com/darna-inc/darna/internal/infrastructure/auth"
	"github.com/darna-inc/darna/internal/infrastructure/cache"
	"github.com/darna-inc/darna/internal/infrastructure/config"
	"github.com/darna-inc/darna/internal/infrastructure/metrics"
	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/infrastructure/pubsub"
	"github.com/darna-inc/darna/internal/infrastructure/realtime"
	"github.com/darna-inc/darna/internal/infrastructure/scheduler"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services of the API process and wires them
// together. Shutdown releases them in reverse order.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when Redis is disabled

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	gateMiddleware       *middleware.SubscriptionGateMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	authRateLimiter      *middleware.RateLimitMiddleware

	// Auth
	jwtSvc     *auth.JWTService
	identities *cache.IdentityCache
	enforcer   *permission.Enforcer

	metrics *metrics.Metrics

	// Subscription
	gate    *subscriptionServices.AccessGate
	sweeper *subscriptionUsecases.ExpireSubscriptionsUseCase

	// Background services and realtime fan-out
	schedulerManager    *scheduler.SchedulerManager
	dispatcher          *events.InMemoryEventDispatcher
	ticketNotifications *notification.TicketAnsweredHandler
	registry            *realtime.Registry
	bus                 *pubsub.RedisNotificationBus

	busCancel   context.CancelFunc
	busCancelMu sync.Mutex
	stopOnce    sync.Once
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Realtime - Registry, Notification Bus, Domain Events
	c.initRealtime()

	// Section 3: Subscription - Catalog, Ledger, Access Gate, Sweeper
	if err := c.initSubscription(); err != nil {
		return nil, err
	}

	// Section 4: Use cases and handlers for every bounded context
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	return c, nil
}

// Sweeper returns the expiry sweep job, for the one-shot sweep command.
func (c *Container) Sweeper() *subscriptionUsecases.ExpireSubscriptionsUseCase {
	return c.sweeper
}

// Enforcer returns the role policy enforcer.
func (c *Container) Enforcer() *permission.Enforcer {
	return c.enforcer
}
