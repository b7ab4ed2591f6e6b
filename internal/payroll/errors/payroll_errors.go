package payrollerrors

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
)

var (
	ErrInvalidWeekStart = apperror.New(
		apperror.CodeInvalidInput,
		"week_start must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidWeekEnd = apperror.New(
		apperror.CodeInvalidInput,
		"week_end must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidWeekRange = apperror.New(
		apperror.CodeInvalidInput,
		"week_start must be before or equal week_end",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to build payroll export",
		http.StatusInternalServerError,
	)
)
