package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository реализует репозиторий пользователей.
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает нового пользователя, заполняя ID и CreatedAt
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	id := uuid.NewString()

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, secret_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		id, user.Name, user.Email, user.SecretHash,
	).Scan(&user.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("repository: failed to create user %q: %w", user.Email, err)
	}

	user.ID = id
	return nil
}

// UpdateUser обновляет имя, email и хеш секрета
func (r *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $2, email = $3, secret_hash = $4
		 WHERE id = $1`,
		user.ID, user.Name, user.Email, user.SecretHash,
	)

	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrUserExists
		case isInvalidID(err):
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: failed to update user %q: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// DeleteUser удаляет пользователя по ID
func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: failed to delete user %q: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// GetUserByEmail получает пользователя по email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`SELECT id::text, name, email, secret_hash, created_at
		 FROM users
		 WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.SecretHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by email %q: %w", email, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`SELECT id::text, name, email, secret_hash, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.SecretHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %q: %w", id, err)
	}

	return user, nil
}

// ListUsers получает всех пользователей
func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id::text, name, email, secret_hash, created_at
		 FROM users
		 ORDER BY created_at ASC`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.SecretHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, nil
}

// CountUsers возвращает количество пользователей
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count users: %w", err)
	}

	return count, nil
}
