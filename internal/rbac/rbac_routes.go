package rbac

import (
	"github.com/BMarcano/dispatcher/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, secret string, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(secret))
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/permissions", handler.MyPermissions)
		group.POST("/enforce",
			middleware.RBACAuthorize(service, "rbac", "read"),
			handler.Enforce,
		)
	}
}
