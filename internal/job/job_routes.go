package job

import (
	"github.com/BMarcano/dispatcher/internal/middleware"
	"github.com/BMarcano/dispatcher/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	secret string,
	logger *zap.Logger,
) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware(secret))
	jobs.Use(middleware.ContextLogger(logger))
	{
		jobs.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "job", "read"),
			handler.List,
		)

		jobs.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "job", "read"),
			handler.GetByID,
		)

		jobs.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "job", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		jobs.PATCH("/:id/status",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "job", "update"),
			handler.UpdateStatus,
		)
	}
}
