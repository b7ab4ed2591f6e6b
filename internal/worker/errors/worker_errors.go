package workererrors

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
)

var (
	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Worker not found",
		http.StatusNotFound,
	)
	ErrWorkerEmailExists = apperror.New(
		apperror.CodeConflict,
		"Worker with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidDailyRate = apperror.New(
		apperror.CodeInvalidInput,
		"daily_rate must be a non-negative amount",
		http.StatusBadRequest,
	)
)
