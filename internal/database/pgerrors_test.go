package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_requests_requester"}

	t.Run("unique violation", func(t *testing.T) {
		err := fmt.Errorf("failed to create user: %w", unique)
		assert.True(t, IsUniqueViolation(err))
		assert.False(t, IsForeignKeyViolation(err))
		assert.Equal(t, "idx_users_username", ConstraintName(err))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		assert.True(t, IsForeignKeyViolation(fk))
		assert.False(t, IsUniqueViolation(fk))
	})

	t.Run("non postgres error", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.False(t, IsUniqueViolation(err))
		assert.False(t, IsForeignKeyViolation(err))
		assert.Empty(t, ConstraintName(err))
		assert.False(t, IsUniqueViolation(nil))
	})
}
