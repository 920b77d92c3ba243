package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures the subscription ledger routes.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subs := api.Group("/user_subscription")
	subs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subs.POST("", cfg.SubscriptionHandler.CreateSubscription)
		subs.GET("/me", cfg.SubscriptionHandler.GetMySubscription)

		subs.GET("",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscriptions, permission.ActionRead),
			cfg.SubscriptionHandler.ListSubscriptions)
		subs.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscriptions, permission.ActionWrite),
			cfg.SubscriptionHandler.UpdateSubscription)
	}
}
