package worker

import (
	"github.com/BMarcano/dispatcher/internal/middleware"
	"github.com/BMarcano/dispatcher/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	secret string,
	logger *zap.Logger,
) {
	workers := r.Group("/workers")
	workers.Use(middleware.AuthMiddleware(secret))
	workers.Use(middleware.ContextLogger(logger))
	{
		workers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "worker", "read"),
			handler.GetAll,
		)

		workers.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "worker", "read"),
			handler.GetByID,
		)

		workers.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "worker", "create"),
			handler.Create,
		)

		workers.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "worker", "update"),
			handler.Update,
		)
	}
}
