package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fintrack/expense-service/internal/domain/repository"
)

func TestTranslateUniqueViolation(t *testing.T) {
	assert.ErrorIs(t, translateUniqueViolation(&pgconn.PgError{
		Code: "23505", ConstraintName: "users_username_key",
	}), repository.ErrDuplicateUsername)

	assert.ErrorIs(t, translateUniqueViolation(&pgconn.PgError{
		Code: "23505", ConstraintName: "users_email_key",
	}), repository.ErrDuplicateEmail)

	// Other codes and non-pg errors pass through untouched.
	notNull := &pgconn.PgError{Code: "23502", ConstraintName: "users_username_key"}
	assert.Equal(t, error(notNull), translateUniqueViolation(notNull))
	assert.Equal(t, assert.AnError, translateUniqueViolation(assert.AnError))
}
