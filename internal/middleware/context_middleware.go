package middleware

import (
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger builds a request-scoped logger tagged with the request id
// and, when AuthMiddleware ran first, the caller's user id and role.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = ensureRequestID(c)
			ctx = c.Request.Context()
		}

		fields := []zap.Field{zap.String("request_id", rid)}
		if s, ok := SessionFrom(c); ok {
			fields = append(fields,
				zap.String("user_id", s.UserID),
				zap.String("role", string(s.Role)),
			)
		}

		reqLogger := logger.With(fields...)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}
