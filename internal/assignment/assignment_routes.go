package assignment

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
	auth := []gin.HandlerFunc{
		middleware.AuthMiddleware(secret),
		middleware.ContextLogger(logger),
	}

	byJob := r.Group("/jobs/:id/assignments", auth...)
	{
		byJob.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.ListByJob,
		)

		byJob.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assignment", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		byJob.POST("/preview",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "assignment", "create"),
			handler.Preview,
		)
	}

	assignments := r.Group("/assignments", auth...)
	{
		assignments.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.List,
		)

		assignments.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assignment", "delete"),
			handler.Delete,
		)
	}

	me := r.Group("/me", auth...)
	{
		me.GET("/assignments",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read_own"),
			handler.Mine,
		)
	}
}
