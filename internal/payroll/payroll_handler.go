package payroll

import (
	"bytes"
	"fmt"
	"net/http"

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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Snapshots(c *gin.Context) {
	var q SnapshotFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListSnapshots(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	start, end, meta := response.PageBounds(c, len(resp))
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) Summary(c *gin.Context) {
	var q SnapshotFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Export buffers the CSV so a failure can still be reported in the JSON
// envelope.
func (h *Handler) Export(c *gin.Context) {
	var q SnapshotFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Request.Context(), q, &buf); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
