package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/taskflow-server/internal/model"
)

func TestNewRepositories(t *testing.T) {
	db := &Connection{}

	assert.Equal(t, db, NewUserRepository(db).db)
	assert.Equal(t, db, NewProfileRepository(db).db)
	assert.Equal(t, db, NewProjectRepository(db).db)
	assert.Equal(t, db, NewTaskRepository(db).db)
}

func TestConnection_PingWithoutPool(t *testing.T) {
	conn := &Connection{}

	assert.Error(t, conn.Ping(context.Background()))
	assert.NoError(t, conn.Close())
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: pgx.ErrNoRows, want: model.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: model.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}, want: model.ErrConflict},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgForeignKeyViolation}, want: model.ErrReferenceNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err, "do thing")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := mapError(cause, "create user")

		assert.ErrorIs(t, got, cause)
		assert.NotErrorIs(t, got, model.ErrNotFound)
		assert.Contains(t, got.Error(), "failed to create user")
	})

	t.Run("foreign key violation is not a conflict", func(t *testing.T) {
		got := mapError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "tasks_user_id_fkey"}, "create task")
		assert.ErrorIs(t, got, model.ErrNotFound)
		assert.NotErrorIs(t, got, model.ErrConflict)
	})

	t.Run("check violation is not a conflict", func(t *testing.T) {
		got := mapError(&pgconn.PgError{Code: "23514"}, "create task")
		assert.NotErrorIs(t, got, model.ErrConflict)
	})
}
