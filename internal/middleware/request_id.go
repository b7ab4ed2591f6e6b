package middleware

import (
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ensureRequestID(c)
		c.Next()
	}
}

func ensureRequestID(c *gin.Context) string {
	rid := c.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.New().String()
	}

	c.Set("request_id", rid)
	c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
	c.Header(RequestIDHeader, rid)
	return rid
}
