package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

type ChatRouteConfig struct {
	ChatHandler     *handlers.ChatHandler
	RealtimeHandler *handlers.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
	GateMiddleware  *middleware.SubscriptionGateMiddleware
}

// SetupChatRoutes configures messaging routes and the websocket endpoint.
func SetupChatRoutes(engine *gin.Engine, api *gin.RouterGroup, cfg *ChatRouteConfig) {
	messages := api.Group("/chat/message")
	messages.Use(cfg.AuthMiddleware.RequireAuth(), cfg.GateMiddleware.RequireFeatures(vo.FeatureChat))
	{
		messages.POST("", cfg.ChatHandler.SendMessage)
		messages.GET("", cfg.ChatHandler.GetInbox)
		messages.PUT("/read/:sender_id", cfg.ChatHandler.MarkRead)
		messages.GET("/:sender_id", cfg.ChatHandler.GetConversation)
	}

	engine.GET("/ws", cfg.AuthMiddleware.RequireAuth(), cfg.RealtimeHandler.Connect)
}
