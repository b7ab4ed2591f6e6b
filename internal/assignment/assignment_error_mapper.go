package assignment

import (
	"errors"
	"strings"

	assignmenterrors "github.com/BMarcano/dispatcher/internal/assignment/errors"
	"github.com/BMarcano/dispatcher/internal/domain"
	joberrors "github.com/BMarcano/dispatcher/internal/job/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrAssignmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "job") {
				return joberrors.ErrJobNotFound
			}
			return assignmenterrors.ErrUnknownWorker
		case "23514":
			return domain.ErrInvalidMultiplier
		}
	}

	return err
}

func mapJobError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}
	return err
}

func mapWorkerError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrUnknownWorker
	}
	return err
}
