package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	GateMiddleware       *middleware.SubscriptionGateMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			cfg.GateMiddleware.RequireFeatures(vo.FeatureTickets),
			cfg.TicketHandler.CreateTicket)
		tickets.GET("",
			cfg.GateMiddleware.RequireFeatures(vo.FeatureFAQs),
			cfg.TicketHandler.ListTickets)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission(permission.ResourceTickets, permission.ActionWrite),
			cfg.TicketHandler.UpdateTicket)
	}
}
