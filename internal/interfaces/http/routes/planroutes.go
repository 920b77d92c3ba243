package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan catalog routes.
type PlanRouteConfig struct {
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures plan routes. Any signed-in user may browse the
// catalog; edits need the plans write permission.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := api.Group("/subscription_plan")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.GET("", cfg.PlanHandler.ListPlans)

		write := cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlans, permission.ActionWrite)
		plans.POST("", write, cfg.PlanHandler.CreatePlan)
		plans.PUT("/:id", write, cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", write, cfg.PlanHandler.DeletePlan)
	}
}
