package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/avc/boleto-interest-service/internal/utils/jwt"
	"github.com/avc/boleto-interest-service/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	defaultUser    *domain.User
}

// NewAuthService создает новый AuthService.
// Если defaultUser задан, клиенты проверяются только по нему, без обращения к БД.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	defaultUser *domain.User,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		defaultUser:    defaultUser,
	}
}

// Authenticate проверяет email и секрет клиента и выдает JWT
func (s *AuthService) Authenticate(ctx context.Context, email, secret string) (*domain.AuthToken, error) {
	// Валидация входных данных
	if email == "" || secret == "" {
		return nil, fmt.Errorf("%w: empty email or secret", domain.ErrInvalidInput)
	}

	user, err := s.lookup(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to get user %q: %w", email, err)
	}

	// Проверка секрета
	if err := s.passwordHasher.Check(user.SecretHash, secret); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Генерация JWT токена
	token, expiresAt, err := s.jwtManager.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to generate token for user %q: %w", email, err)
	}

	return &domain.AuthToken{
		Token:      token,
		Expiration: expiresAt.Format(time.RFC3339),
	}, nil
}

func (s *AuthService) lookup(ctx context.Context, email string) (*domain.User, error) {
	if s.defaultUser != nil {
		if s.defaultUser.Email != email {
			return nil, domain.ErrUserNotFound
		}
		return s.defaultUser, nil
	}

	return s.userRepo.GetUserByEmail(ctx, email)
}
