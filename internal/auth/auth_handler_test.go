package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BMarcano/dispatcher/internal/auth"
	autherrors "github.com/BMarcano/dispatcher/internal/auth/errors"
	"github.com/BMarcano/dispatcher/internal/middleware"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn    func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	RefreshFn  func(ctx context.Context, refreshToken string) (auth.LoginResponse, error)
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error)
	MeFn       func(ctx context.Context, session contextutil.Session) (auth.UserResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	return f.RefreshFn(ctx, refreshToken)
}
func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAuthService) Me(ctx context.Context, session contextutil.Session) (auth.UserResponse, error) {
	return f.MeFn(ctx, session)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets http-only cookies", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{AccessToken: "acc", RefreshToken: "ref", User: auth.UserResponse{ID: "user-1"}}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"secret1"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		auth.NewHandler(svc, true).Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		access := findCookie(w, middleware.AccessTokenCookie)
		if assert.NotNil(t, access) {
			assert.Equal(t, "acc", access.Value)
			assert.True(t, access.HttpOnly)
			assert.True(t, access.Secure)
			assert.Equal(t, 900, access.MaxAge)
		}
		assert.NotNil(t, findCookie(w, middleware.RefreshTokenCookie))
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		auth.NewHandler(svc, false).Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, findCookie(w, middleware.AccessTokenCookie))
	})

	t.Run("invalid email", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"ana","password":"x"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		auth.NewHandler(&fakeAuthService{}, false).Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email is invalid")
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("reads the cookie first", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshFn: func(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
				assert.Equal(t, "from-cookie", refreshToken)
				return auth.LoginResponse{AccessToken: "a2", RefreshToken: "r2"}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		c.Request.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "from-cookie"})

		auth.NewHandler(svc, false).Refresh(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a2", findCookie(w, middleware.AccessTokenCookie).Value)
	})

	t.Run("falls back to the body", func(t *testing.T) {
		svc := &fakeAuthService{
			RefreshFn: func(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
				assert.Equal(t, "from-body", refreshToken)
				return auth.LoginResponse{}, autherrors.ErrInvalidRefreshToken
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refresh_token":"from-body"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		auth.NewHandler(svc, false).Refresh(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)

	auth.NewHandler(&fakeAuthService{}, false).Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := findCookie(w, middleware.AccessTokenCookie)
	if assert.NotNil(t, cookie) {
		assert.Equal(t, "", cookie.Value)
		assert.True(t, cookie.MaxAge < 0)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &fakeAuthService{
		RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
			return auth.UserResponse{}, autherrors.ErrEmailAlreadyRegistered
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email":"a@example.com","password":"secret1","role":"supervisor"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	auth.NewHandler(svc, false).Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("without session", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)

		auth.NewHandler(&fakeAuthService{}, false).Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with session", func(t *testing.T) {
		svc := &fakeAuthService{
			MeFn: func(ctx context.Context, session contextutil.Session) (auth.UserResponse, error) {
				return auth.UserResponse{ID: session.UserID, Role: "admin", HomePath: "/admin/payroll"}, nil
			},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		c.Set("session", contextutil.Session{UserID: "user-9"})

		auth.NewHandler(svc, false).Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"home_path":"/admin/payroll"`)
	})
}
