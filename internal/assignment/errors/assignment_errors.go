package assignmenterrors

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"days must be dates in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrDayOutsideJob = apperror.New(
		apperror.CodeInvalidInput,
		"every day must fall within the job's start_date and end_date",
		http.StatusBadRequest,
	)
	ErrUnknownWorker = apperror.New(
		apperror.CodeInvalidInput,
		"worker_id does not reference an existing worker",
		http.StatusBadRequest,
	)
	ErrNoWorkerLinked = apperror.New(
		apperror.CodeForbidden,
		"Your account is not linked to a worker",
		http.StatusForbidden,
	)
)
