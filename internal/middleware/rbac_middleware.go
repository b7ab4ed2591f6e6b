package middleware

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context")
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     string(session.Role),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message)
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
