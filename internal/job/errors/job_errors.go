package joberrors

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidFilterDate = apperror.New(
		apperror.CodeInvalidInput,
		"date filter must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrDuplicateExternalRef = apperror.New(
		apperror.CodeConflict,
		"A job with the same external reference already exists",
		http.StatusConflict,
	)
)
