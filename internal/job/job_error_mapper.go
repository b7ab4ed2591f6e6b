package job

import (
	"errors"

	joberrors "github.com/BMarcano/dispatcher/internal/job/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return joberrors.ErrDuplicateExternalRef
	}

	return err
}
