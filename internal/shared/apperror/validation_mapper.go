package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

// formatFieldName turns a json name into a label: day_date -> Day Date.
func formatFieldName(s string) string {
	return fieldCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns a gin binding error into an INVALID_INPUT
// AppError naming the first failing field by its json tag.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	// e.Field() is the json name because of RegisterTagNameFunc in Init.
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "oneof":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(e.Param()), ", ")),
			http.StatusBadRequest,
		)
	case "min":
		if e.Kind().String() == "slice" {
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must contain at least %s item(s)", field, e.Param()),
				http.StatusBadRequest,
			)
		}
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be at least %s characters", field, e.Param()),
			http.StatusBadRequest,
		)
	default:
		return InvalidField(field)
	}
}
