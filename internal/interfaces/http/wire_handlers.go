package http

import (
	"context"

	"github.com/darna-inc/darna/internal/infrastructure/realtime"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
	propertyHandler     *handlers.PropertyHandler
	ticketHandler       *handlers.TicketHandler
	chatHandler         *handlers.ChatHandler
	realtimeHandler     *handlers.RealtimeHandler
	analyticsHandler    *handlers.AnalyticsHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) newHandlers() *allHandlers {
	log := c.log
	u := c.ucs

	return &allHandlers{
		authHandler: handlers.NewAuthHandler(u.signUpUC, u.signInUC, log),
		userHandler: handlers.NewUserHandler(handlers.UserUseCases{
			Get:            u.getUserUC,
			GetProfile:     u.getProfileUC,
			UpdateProfile:  u.updateProfileUC,
			ChangePassword: u.changePasswordUC,
			Notifications:  u.notificationSettingsUC,
			List:           u.listUsersUC,
			Create:         u.createUserUC,
			Delete:         u.deleteUserUC,
		}, log),
		planHandler: handlers.NewPlanHandler(u.createPlanUC, u.updatePlanUC, u.listPlansUC, u.deletePlanUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			u.createSubscriptionUC, u.updateSubscriptionUC, u.listSubscriptionsUC, u.getMySubscriptionUC, log,
		),
		propertyHandler: handlers.NewPropertyHandler(handlers.PropertyUseCases{
			Create:   u.createPropertyUC,
			Update:   u.updatePropertyUC,
			Delete:   u.deletePropertyUC,
			Get:      u.getPropertyUC,
			List:     u.listPropertiesUC,
			Views:    u.incrementViewsUC,
			Favorite: u.toggleFavoriteUC,
			Catalog:  u.catalogUC,

			CreateType: u.createTypeUC,
			UpdateType: u.updateTypeUC,
			DeleteType: u.deleteTypeUC,
			Tags:       u.tagsUC,
		}, log),
		ticketHandler: handlers.NewTicketHandler(u.createTicketUC, u.listTicketsUC, u.getTicketUC, u.updateTicketUC, log),
		chatHandler:   handlers.NewChatHandler(u.sendMessageUC, u.conversationUC, u.inboxUC, u.markReadUC, log),
		realtimeHandler: handlers.NewRealtimeHandler(
			c.registry, realtime.NewClientConfig(c.cfg.Realtime), c.cfg.Server.AllowedOrigins, log,
		),
		analyticsHandler: handlers.NewAnalyticsHandler(u.dashboardUC, u.generalStatsUC, log),
		healthHandler:    handlers.NewHealthHandler(c.healthChecks(), log),
	}
}

// healthChecks checks the database and, when enabled, Redis.
func (c *Container) healthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}
