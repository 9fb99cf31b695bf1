package postgres

import (
	"errors"
	"fmt"
	"hellofood/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// isInvalidValue reports whether the database rejected the value itself
// rather than a reference or a uniqueness rule.
func isInvalidValue(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.CheckViolation, pgerrcode.NumericValueOutOfRange:
		return true
	default:
		return false
	}
}

// invalidValue wraps storage.ErrInvalidValue naming the violated constraint,
// or the database message when no constraint is involved.
func invalidValue(err error) error {
	what := constraintOf(err)
	var pgErr *pgconn.PgError
	if what == "" && errors.As(err, &pgErr) {
		what = pgErr.Message
	}

	return fmt.Errorf("%s: %w", what, storage.ErrInvalidValue)
}

// constraintOf names the violated constraint, or "" for other errors.
func constraintOf(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
