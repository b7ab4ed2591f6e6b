package payroll

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
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(secret))
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.GET("/snapshots",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.Snapshots,
		)

		payroll.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.Summary,
		)

		payroll.GET("/export.csv",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "export"),
			handler.Export,
		)
	}
}
