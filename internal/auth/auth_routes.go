package auth

import (
	"github.com/BMarcano/dispatcher/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, secret string, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.Refresh)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(secret), handler.Me)
	}
}
