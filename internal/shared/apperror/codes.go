package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeRateLimited  = "RATE_LIMITED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeFetchFailed        = "FETCH_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
