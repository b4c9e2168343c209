package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bet_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapWriteError translates constraint violations into domain sentinels and
// wraps everything else as a 500.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", what, apperrors.ErrValidation)
		}
	}
	return apperrors.NewAppError(500, "failed to save "+what, err)
}
