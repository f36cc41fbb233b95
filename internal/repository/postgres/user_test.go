package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "name", "email", "secret_hash", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		createdAt := time.Now()
		user := &domain.User{Name: "Ana", Email: "ana@example.com", SecretHash: "hashedsecret"}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "Ana", "ana@example.com", "hashedsecret").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		err := repo.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		user := &domain.User{Name: "Ana", Email: "ana@example.com", SecretHash: "hashedsecret"}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "Ana", "ana@example.com", "hashedsecret").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateUser(ctx, user)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Empty(t, user.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		user := &domain.User{Name: "Ana", Email: "ana@example.com", SecretHash: "hashedsecret"}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(pgxmock.AnyArg(), "Ana", "ana@example.com", "hashedsecret").
			WillReturnError(errors.New("database error"))

		err := repo.CreateUser(ctx, user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()
	user := &domain.User{ID: "id-1", Name: "Ana", Email: "ana@example.com", SecretHash: "hash"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users`).
			WithArgs("id-1", "Ana", "ana@example.com", "hash").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateUser(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users`).
			WithArgs("id-1", "Ana", "ana@example.com", "hash").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateUser(ctx, user), domain.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email taken", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users`).
			WithArgs("id-1", "Ana", "ana@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, repo.UpdateUser(ctx, user), domain.ErrUserExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_DeleteUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id`).
			WithArgs("id-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteUser(ctx, "id-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id`).
			WithArgs("id-2").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteUser(ctx, "id-2"), domain.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed id", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id`).
			WithArgs("bad").
			WillReturnError(&pgconn.PgError{Code: "22P02"})

		assert.ErrorIs(t, repo.DeleteUser(ctx, "bad"), domain.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userRowColumns).
			AddRow("id-1", "Ana", "ana@example.com", "hash", time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("ana@example.com").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "id-1", user.ID)
		assert.Equal(t, "hash", user.SecretHash)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("ana@example.com").
			WillReturnError(errors.New("database error"))

		user, err := repo.GetUserByEmail(ctx, "ana@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userRowColumns).
			AddRow("id-1", "Ana", "ana@example.com", "hash", time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
			WithArgs("id-1").
			WillReturnRows(rows)

		user, err := repo.GetUserByID(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
			WithArgs("id-9").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, "id-9")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ListUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	rows := pgxmock.NewRows(userRowColumns).
		AddRow("id-1", "Ana", "ana@example.com", "hash", time.Now()).
		AddRow("id-2", "Bruno", "bruno@example.com", "hash", time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM users ORDER BY created_at`).
		WillReturnRows(rows)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bruno@example.com", users[1].Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CountUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
