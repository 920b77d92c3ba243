package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

// AnalyticsRouteConfig holds dependencies for dashboard routes.
type AnalyticsRouteConfig struct {
	AnalyticsHandler     *handlers.AnalyticsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAnalyticsRoutes configures the dashboard counters. The general
// statistics need the analytics read permission.
func SetupAnalyticsRoutes(api *gin.RouterGroup, cfg *AnalyticsRouteConfig) {
	stats := api.Group("/analytics")
	stats.Use(cfg.AuthMiddleware.RequireAuth())
	{
		stats.GET("", cfg.AnalyticsHandler.Dashboard)
		stats.GET("/general",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceAnalytics, permission.ActionRead),
			cfg.AnalyticsHandler.GeneralStats)
	}
}
