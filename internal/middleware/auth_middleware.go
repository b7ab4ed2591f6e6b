package middleware

import (
	"errors"
	"strings"

	autherrors "github.com/BMarcano/dispatcher/internal/auth/errors"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	"github.com/BMarcano/dispatcher/internal/shared/response"
	"github.com/BMarcano/dispatcher/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"

	ctxSession = "session"
)

// AuthMiddleware verifies the access token (Bearer header first, then the
// access_token cookie) and attaches the caller's Session to both the gin
// context and the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	issuer := token.NewIssuer(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := issuer.Parse(tokenString, token.TypeAccess)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, token.ErrExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		if !claims.Role.Valid() {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		session := contextutil.Session{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     claims.Role,
			WorkerID: claims.WorkerID,
		}

		c.Set("user_id", session.UserID)
		c.Set("role", string(session.Role))
		c.Set(ctxSession, session)
		c.Request = c.Request.WithContext(contextutil.WithSession(c.Request.Context(), session))

		c.Next()
	}
}

// SessionFrom returns the Session set by AuthMiddleware.
func SessionFrom(c *gin.Context) (contextutil.Session, bool) {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(contextutil.Session); ok {
			return s, true
		}
	}
	return contextutil.GetSession(c.Request.Context())
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
