package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers"
	"github.com/darna-inc/darna/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth and user routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	// PermissionMiddleware guards the back office account management.
	PermissionMiddleware *middleware.PermissionMiddleware
	// RateLimiter is nil when Redis is disabled.
	RateLimiter *middleware.RateLimitMiddleware
}

// SetupAuthRoutes configures sign up, sign in and profile routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	if cfg.RateLimiter != nil {
		auth.Use(cfg.RateLimiter.Limit())
	}
	{
		auth.POST("/signup", cfg.AuthHandler.SignUp)
		auth.POST("/signin", cfg.AuthHandler.SignIn)
	}

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific named endpoints (must come BEFORE /:id)
		users.GET("/me", cfg.UserHandler.GetMe)
		users.PUT("", cfg.UserHandler.UpdateProfile)
		users.PUT("/password", cfg.UserHandler.ChangePassword)
		users.PUT("/notification-settings", cfg.UserHandler.UpdateNotificationSettings)

		read := cfg.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionRead)
		write := cfg.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionWrite)
		users.GET("", read, cfg.UserHandler.ListUsers)
		users.POST("", write, cfg.UserHandler.CreateUser)
		users.DELETE("/:id", write, cfg.UserHandler.DeleteUser)

		users.GET("/:id", cfg.UserHandler.GetUser)
	}
}
