package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BMarcano/dispatcher/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewEngine_HealthAndRequestID(t *testing.T) {
	r := NewEngine(EngineConfig{AllowedOrigins: []string{"http://localhost:5173"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestNewEngine_CORSPreflight(t *testing.T) {
	r := NewEngine(EngineConfig{AllowedOrigins: []string{"http://localhost:5173"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestNewEngine_CORSRejectsUnknownOrigin(t *testing.T) {
	r := NewEngine(EngineConfig{AllowedOrigins: []string{"http://localhost:5173"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
