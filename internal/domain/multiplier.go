package domain

import (
	"net/http"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

// Day-assignment pay multipliers. Only these two values are accepted.
var (
	HalfDay = decimal.RequireFromString("0.5")
	FullDay = decimal.NewFromInt(1)
)

var ErrInvalidMultiplier = apperror.New(
	apperror.CodeInvalidInput,
	"multiplier must be 0.5 or 1.0",
	http.StatusBadRequest,
)

func ValidateMultiplier(m decimal.Decimal) error {
	if m.Equal(HalfDay) || m.Equal(FullDay) {
		return nil
	}
	return ErrInvalidMultiplier
}
