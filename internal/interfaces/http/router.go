package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/darna-inc/darna/internal/domain/shared/events"
	ticketdomain "github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
	"github.com/darna-inc/darna/internal/interfaces/http/routes"
	"github.com/darna-inc/darna/internal/shared/utils"
)

// SetupRoutes registers validators, global middleware and every route group.
func (c *Container) SetupRoutes() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.UseJSONFieldNames(v)
		if err := handlers.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	e := c.engine
	e.Use(
		middleware.Recovery(c.log),
		middleware.RequestID(),
		middleware.AccessLog(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
		middleware.Metrics(c.metrics),
		middleware.ErrorHandler(c.log),
	)

	e.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	if c.cfg.Metrics.Enabled {
		e.GET(c.cfg.Metrics.Path, gin.WrapH(c.metrics.Handler()))
	}

	api := e.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:          c.hdlrs.authHandler,
		UserHandler:          c.hdlrs.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.authRateLimiter,
	})

	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{
		PlanHandler:          c.hdlrs.planHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  c.hdlrs.subscriptionHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupPropertyRoutes(api, &routes.PropertyRouteConfig{
		PropertyHandler:      c.hdlrs.propertyHandler,
		AuthMiddleware:       c.authMiddleware,
		GateMiddleware:       c.gateMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		GateMiddleware:       c.gateMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAnalyticsRoutes(api, &routes.AnalyticsRouteConfig{
		AnalyticsHandler:     c.hdlrs.analyticsHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupChatRoutes(e, api, &routes.ChatRouteConfig{
		ChatHandler:     c.hdlrs.chatHandler,
		RealtimeHandler: c.hdlrs.realtimeHandler,
		AuthMiddleware:  c.authMiddleware,
		GateMiddleware:  c.gateMiddleware,
	})

	return nil
}

// Engine returns the Gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches the background services: the domain event dispatcher with
// its subscribers and the sweep scheduler.
func (c *Container) Start() error {
	if err := c.ticketNotifications.Register(c.dispatcher); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", ticketdomain.EventTicketAnswered, err)
	}
	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
	return nil
}

// RunBus relays notifications published by other instances to local
// websocket connections until ctx is done. Without Redis it just waits.
func (c *Container) RunBus(ctx context.Context) error {
	if c.bus == nil {
		<-ctx.Done()
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	c.busCancelMu.Lock()
	c.busCancel = cancel
	c.busCancelMu.Unlock()
	defer cancel()

	err := c.bus.Subscribe(ctx, c.registry.Deliver)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Shutdown stops background services and closes websocket connections and
// the Redis client. Safe to call more than once.
func (c *Container) Shutdown() {
	c.stopOnce.Do(func() {
		if c.schedulerManager != nil {
			if err := c.schedulerManager.Stop(); err != nil {
				c.log.Warnw("failed to stop scheduler", "error", err)
			}
		}

		c.busCancelMu.Lock()
		if c.busCancel != nil {
			c.busCancel()
		}
		c.busCancelMu.Unlock()

		if err := c.dispatcher.Stop(); err != nil && !errors.Is(err, events.ErrDispatcherNotRunning) {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}

		c.registry.Shutdown()

		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close Redis client", "error", err)
			}
		}
	})
}
