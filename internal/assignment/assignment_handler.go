package assignment

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/middleware"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assignment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("assignment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	var q ListAssignmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByJob(c *gin.Context) {
	jobID, err := apperror.ParseID("id", c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	jobID, err := apperror.ParseID("id", c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req CreateAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create assignments validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), session, jobID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	jobID, err := apperror.ParseID("id", c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req CreateAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), jobID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	id, err := apperror.ParseID("id", c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), session, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Mine(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.ListForWorker(c.Request.Context(), session)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
