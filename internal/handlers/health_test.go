package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler_Health(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name       string
		db         Pinger
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{"Database ok", fakePinger{}, http.StatusOK, "ok", "ok"},
		{"Without database", nil, http.StatusOK, "ok", "ok"},
		{"Database down", fakePinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "degraded", "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.db, logger)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler.Health(w, req)
			assert.Equal(t, tt.wantCode, w.Code)

			var resp HealthResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantDB, resp.Database)
		})
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Ready", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{}, logger)
		w := httptest.NewRecorder()

		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("Not ready", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{err: errors.New("timeout")}, logger)
		w := httptest.NewRecorder()

		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
