package apperror

import (
	"strings"

	"github.com/google/uuid"
)

// ParseID returns v in canonical UUID form, or InvalidField(field) when v is
// not a UUID.
func ParseID(field, v string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return "", InvalidField(field)
	}
	return id.String(), nil
}
