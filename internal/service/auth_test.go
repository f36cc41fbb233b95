package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	domainmocks "github.com/avc/boleto-interest-service/internal/domain/mocks"
	"github.com/avc/boleto-interest-service/internal/utils/jwt"
	"github.com/avc/boleto-interest-service/internal/utils/password"
	passwordmocks "github.com/avc/boleto-interest-service/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Authenticate(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{ID: "id-1", Email: "ana@example.com", SecretHash: "hashed_secret"}

		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "ana@example.com").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed_secret", "secret123").Return(nil).Once()

		token, err := svc.Authenticate(ctx, "ana@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)

		expiration, err := time.Parse(time.RFC3339, token.Expiration)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiration, 2*time.Second)

		subject, err := jwtManager.Validate(token.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", subject)
	})

	t.Run("Empty email", func(t *testing.T) {
		token, err := svc.Authenticate(ctx, "", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, token)
	})

	t.Run("Empty secret", func(t *testing.T) {
		token, err := svc.Authenticate(ctx, "ana@example.com", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, token)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "nobody@example.com").
			Return(nil, domain.ErrUserNotFound).Once()

		token, err := svc.Authenticate(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		user := &domain.User{ID: "id-1", Email: "ana@example.com", SecretHash: "hashed_secret"}

		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "ana@example.com").Return(user, nil).Once()
		mockHasher.EXPECT().Check("hashed_secret", "wrong").Return(password.ErrMismatch).Once()

		token, err := svc.Authenticate(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(mock.Anything, "ana@example.com").
			Return(nil, errors.New("db error")).Once()

		token, err := svc.Authenticate(ctx, "ana@example.com", "secret123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, token)
	})
}

func TestAuthService_Authenticate_InMemoryUser(t *testing.T) {
	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	defaultUser := &domain.User{Email: "admin@example.com", SecretHash: "admin_hash"}
	svc := NewAuthService(mockUserRepo, mockHasher, jwtManager, defaultUser)
	ctx := context.Background()

	t.Run("Success without database", func(t *testing.T) {
		mockHasher.EXPECT().Check("admin_hash", "admin-secret").Return(nil).Once()

		token, err := svc.Authenticate(ctx, "admin@example.com", "admin-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)
	})

	t.Run("Other email rejected", func(t *testing.T) {
		token, err := svc.Authenticate(ctx, "ana@example.com", "admin-secret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	mockUserRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
}
