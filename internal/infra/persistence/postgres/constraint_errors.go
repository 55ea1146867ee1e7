package postgres

import (
	"strings"

	domainerrors "planner/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// uniqueViolationError names the colliding field from the constraint when
// the driver reports one.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		constraint := strings.ToLower(pgErr.ConstraintName)
		switch {
		case strings.Contains(constraint, "username"):
			return domainerrors.ErrUsernameTaken.WithCause(err)
		case strings.Contains(constraint, "email"):
			return domainerrors.ErrEmailTaken.WithCause(err)
		}
	}

	return domainerrors.ErrConflict.WithCause(err)
}
