package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"go.uber.org/zap"
)

type lookupRequest struct {
	Code string `json:"code"`
}

// HTTPBoletoClient реализует domain.BoletoClient поверх внешнего API боллетов
type HTTPBoletoClient struct {
	lookupURL  string
	tokens     domain.TokenSource
	httpClient *http.Client
	logger     *zap.Logger
}

// NewBoletoClient создает новый HTTPBoletoClient
func NewBoletoClient(lookupURL string, tokens domain.TokenSource, timeout time.Duration, logger *zap.Logger) *HTTPBoletoClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPBoletoClient{
		lookupURL: lookupURL,
		tokens:    tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchByCode получает боллет по штрихкоду.
// Тело ответа, которое не удалось разобрать, дает пустой боллет без ошибки.
func (c *HTTPBoletoClient) FetchByCode(ctx context.Context, code string) (*domain.Boleto, error) {
	token, err := c.tokens.AcquireToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}

	body, err := json.Marshal(lookupRequest{Code: code})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", domain.ErrServiceUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.lookupURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrServiceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("boleto lookup failed", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to execute request: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Токен отозван до истечения срока, следующий вызов получит новый
		c.tokens.Invalidate()
		return nil, fmt.Errorf("%w: lookup unauthorized", domain.ErrServiceUnavailable)

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warn("boleto lookup rejected", zap.String("code", code), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrServiceUnavailable, resp.StatusCode)
	}

	var boleto domain.Boleto
	if err := json.NewDecoder(resp.Body).Decode(&boleto); err != nil {
		c.logger.Debug("boleto lookup returned undecodable body", zap.String("code", code), zap.Error(err))
		return &domain.Boleto{}, nil
	}

	return &boleto, nil
}
