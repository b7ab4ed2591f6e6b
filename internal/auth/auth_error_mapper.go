package auth

import (
	"errors"

	autherrors "github.com/BMarcano/dispatcher/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueProfileEmail = "uq_user_profiles_email"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == uniqueProfileEmail {
			return autherrors.ErrEmailAlreadyRegistered
		}
		return autherrors.ErrWorkerAlreadyLinked
	}

	return err
}
