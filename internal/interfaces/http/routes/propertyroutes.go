package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

// PropertyRouteConfig holds dependencies for property routes.
type PropertyRouteConfig struct {
	PropertyHandler *handlers.PropertyHandler
	AuthMiddleware  *middleware.AuthMiddleware
	GateMiddleware  *middleware.SubscriptionGateMiddleware

	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPropertyRoutes configures listing routes. Browsing is open to
// anonymous visitors; publishing and favorites go through the access gate.
// Staff with the catalog permission maintain property types and tags.
func SetupPropertyRoutes(api *gin.RouterGroup, cfg *PropertyRouteConfig) {
	props := api.Group("/property")
	{
		// Public catalog endpoints (must come BEFORE /:id)
		props.GET("/area-range", cfg.PropertyHandler.AreaRange)
		props.GET("/types", cfg.PropertyHandler.PropertyTypes)
		props.GET("/slug/:slug", cfg.AuthMiddleware.OptionalAuth(), cfg.PropertyHandler.GetPropertyBySlug)
		props.PUT("/view/:id", cfg.PropertyHandler.IncrementViews)
		props.GET("/tags", cfg.AuthMiddleware.RequireAuth(), cfg.PropertyHandler.ListTags)

		catalog := props.Group("")
		catalog.Use(
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceCatalog, permission.ActionWrite),
		)
		{
			catalog.POST("/types", cfg.PropertyHandler.CreatePropertyType)
			catalog.PUT("/types/:id", cfg.PropertyHandler.UpdatePropertyType)
			catalog.DELETE("/types/:id", cfg.PropertyHandler.DeletePropertyType)
			catalog.PUT("/tags/:id/approve", cfg.PropertyHandler.ApproveTag)
		}

		props.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.PropertyHandler.ListProperties)
		props.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.PropertyHandler.GetProperty)

		props.PUT("/favorite/:id",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.GateMiddleware.RequireFeatures(vo.FeatureFavorite),
			cfg.PropertyHandler.ToggleFavorite)

		owned := props.Group("")
		owned.Use(cfg.AuthMiddleware.RequireAuth(), cfg.GateMiddleware.RequireFeatures(vo.FeatureProperties))
		{
			owned.POST("", cfg.PropertyHandler.CreateProperty)
			owned.PUT("/:id", cfg.PropertyHandler.UpdateProperty)
			owned.DELETE("/:id", cfg.PropertyHandler.DeleteProperty)
		}
	}
}
