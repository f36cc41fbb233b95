package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ExpiresInLayout формат поля expires_in в ответе сервиса авторизации
const ExpiresInLayout = "2006-01-02T15:04:05.000000"

// SessionConfig параметры обмена учетных данных на токен
type SessionConfig struct {
	AuthURL       string
	ClientID      string
	ClientSecret  string
	RefreshMargin time.Duration
	Timeout       time.Duration
	Now           func() time.Time // по умолчанию time.Now
}

type authRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type authResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}

// SessionManager реализует domain.TokenSource.
// Хранит один токен внешнего API и обновляет его по истечении срока.
type SessionManager struct {
	cfg        SessionConfig
	httpClient *http.Client
	logger     *zap.Logger

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	group singleflight.Group
}

// NewSessionManager создает новый SessionManager
func NewSessionManager(cfg SessionConfig, logger *zap.Logger) *SessionManager {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &SessionManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// AcquireToken возвращает действующий токен, при необходимости выполняя обмен
func (m *SessionManager) AcquireToken(ctx context.Context) (string, error) {
	if token, ok := m.cached(); ok {
		return token, nil
	}

	// Параллельные вызовы с устаревшей сессией ждут один обмен.
	// Обмен не зависит от отмены контекста первого вызова, его ограничивает таймаут клиента.
	ch := m.group.DoChan("token", func() (any, error) {
		if token, ok := m.cached(); ok {
			return token, nil
		}
		return m.exchange(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, ctx.Err())
	}
}

// Invalidate сбрасывает сохраненный токен
func (m *SessionManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	m.expiresAt = time.Time{}
}

func (m *SessionManager) cached() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return "", false
	}
	if !m.expiresAt.After(m.cfg.Now().Add(m.cfg.RefreshMargin)) {
		return "", false
	}

	return m.token, true
}

func (m *SessionManager) exchange(ctx context.Context) (string, error) {
	body, err := json.Marshal(authRequest{
		ClientID:     m.cfg.ClientID,
		ClientSecret: m.cfg.ClientSecret,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", domain.ErrAuthenticationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.AuthURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", domain.ErrAuthenticationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Warn("token exchange failed", zap.Error(err))
		return "", fmt.Errorf("%w: failed to execute request: %v", domain.ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.logger.Warn("token exchange rejected", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: unexpected status code: %d", domain.ErrAuthenticationFailed, resp.StatusCode)
	}

	var authResp authResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", domain.ErrAuthenticationFailed, err)
	}
	if authResp.Token == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrAuthenticationFailed)
	}

	expiresAt, err := time.ParseInLocation(ExpiresInLayout, authResp.ExpiresIn, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: invalid expires_in %q: %v", domain.ErrAuthenticationFailed, authResp.ExpiresIn, err)
	}

	m.mu.Lock()
	m.token = authResp.Token
	m.expiresAt = expiresAt
	m.mu.Unlock()

	m.logger.Debug("remote session refreshed", zap.Time("expires_at", expiresAt))

	return authResp.Token, nil
}
