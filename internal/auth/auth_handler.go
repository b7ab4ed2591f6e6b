package auth

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/middleware"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/response"
	"github.com/BMarcano/dispatcher/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service       Service
	secureCookies bool
	logger        *zap.Logger
}

func NewHandler(s Service, secureCookies bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookies: secureCookies, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) setTokenCookies(c *gin.Context, res LoginResponse) {
	h.setCookie(c, middleware.AccessTokenCookie, res.AccessToken, int(token.AccessTTL.Seconds()))
	h.setCookie(c, middleware.RefreshTokenCookie, res.RefreshToken, int(token.RefreshTTL.Seconds()))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookies(c, res)
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// Refresh takes the refresh token from its cookie, or from the JSON body
// for clients that do not keep cookies.
func (h *Handler) Refresh(c *gin.Context) {
	raw, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || raw == "" {
		var req RefreshRequest
		_ = c.ShouldBindJSON(&req)
		raw = req.RefreshToken
	}

	res, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookies(c, res)
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, middleware.RefreshTokenCookie, "", -1)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	res, err := h.service.Me(c.Request.Context(), session)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
