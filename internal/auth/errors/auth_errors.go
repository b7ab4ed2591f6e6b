package autherrors

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)
	ErrWorkerAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"Worker already has an account",
		http.StatusConflict,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of worker, supervisor, admin",
		http.StatusBadRequest,
	)
	ErrWorkerRequired = apperror.New(
		apperror.CodeInvalidInput,
		"worker_id is required for the worker role",
		http.StatusBadRequest,
	)
	ErrWorkerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"worker_id does not reference an existing worker",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
)
