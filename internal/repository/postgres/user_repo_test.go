package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventlistings/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &domain.User{
		Email:        "organizer@example.com",
		PasswordHash: "hash",
		Salt:         "salt",
		Name:         "Pat",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("organizer@example.com", "hash", "salt", "Pat", ts, ts).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))

		repo := NewUserRepository(db)
		u := *user
		require.NoError(t, repo.Create(ctx, &u))
		assert.Equal(t, "user-1", u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		repo := NewUserRepository(db)
		u := *user
		require.ErrorIs(t, repo.Create(ctx, &u), domain.ErrDuplicateEmail)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, password_hash, salt, name, created_at, updated_at`).
			WithArgs("organizer@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "salt", "name", "created_at", "updated_at"}).
				AddRow("user-1", "organizer@example.com", "hash", "salt", "Pat", ts, ts))

		repo := NewUserRepository(db)
		u, err := repo.GetByEmail(ctx, "organizer@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, "Pat", u.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, password_hash, salt, name, created_at, updated_at`).
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
