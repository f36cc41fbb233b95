package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/avc/boleto-interest-service/internal/utils/password"
)

// UserService реализует domain.UserService
type UserService struct {
	userRepo        domain.UserRepository
	passwordHasher  password.Hasher
	minSecretLength int
}

// NewUserService создает новый UserService
func NewUserService(userRepo domain.UserRepository, passwordHasher password.Hasher, minSecretLength int) *UserService {
	return &UserService{
		userRepo:        userRepo,
		passwordHasher:  passwordHasher,
		minSecretLength: minSecretLength,
	}
}

// Add создает клиента API
func (s *UserService) Add(ctx context.Context, name, email, secret string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: empty name or email", domain.ErrInvalidInput)
	}
	if len(secret) < s.minSecretLength {
		return nil, fmt.Errorf("%w: secret shorter than %d characters", domain.ErrInvalidInput, s.minSecretLength)
	}

	hash, err := s.passwordHasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to hash secret for user %q: %w", email, err)
	}

	user := &domain.User{
		Name:       name,
		Email:      email,
		SecretHash: hash,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to add user %q: %w", email, err)
	}

	return user, nil
}

// Update изменяет переданные поля клиента; секрет перехешируется только если задан
func (s *UserService) Update(ctx context.Context, id, name, email, secret string) error {
	if id == "" {
		return fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("user service: failed to get user %q: %w", id, err)
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if secret != "" {
		if len(secret) < s.minSecretLength {
			return fmt.Errorf("%w: secret shorter than %d characters", domain.ErrInvalidInput, s.minSecretLength)
		}
		hash, err := s.passwordHasher.Hash(secret)
		if err != nil {
			return fmt.Errorf("user service: failed to hash secret for user %q: %w", id, err)
		}
		user.SecretHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUserExists) {
			return err
		}
		return fmt.Errorf("user service: failed to update user %q: %w", id, err)
	}

	return nil
}

// Delete удаляет клиента
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("user service: failed to delete user %q: %w", id, err)
	}

	return nil
}

// Get получает клиента по ID
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to get user %q: %w", id, err)
	}

	return user, nil
}

// Exists проверяет наличие клиента
func (s *UserService) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// FindAll получает всех клиентов
func (s *UserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to list users: %w", err)
	}

	return users, nil
}

// Count возвращает количество клиентов
func (s *UserService) Count(ctx context.Context) (int64, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("user service: failed to count users: %w", err)
	}

	return count, nil
}
