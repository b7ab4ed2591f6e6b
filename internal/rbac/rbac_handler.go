package rbac

import (
	"net/http"
	"strings"

	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	"github.com/BMarcano/dispatcher/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	req.Role = strings.TrimSpace(req.Role)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.logger.Error("rbac enforce failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

// MyPermissions lists what the caller's role may do.
func (h *Handler) MyPermissions(c *gin.Context) {
	session, ok := contextutil.GetSession(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message, nil)
		return
	}

	perms, err := h.service.PermissionsForRole(string(session.Role))
	if err != nil {
		h.logger.Error("rbac list permissions failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, domain.RolePermissionsResponse{
		Role:        session.Role,
		HomePath:    session.Role.HomePath(),
		Permissions: perms,
	}, nil)
}
