package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	domainmocks "github.com/avc/boleto-interest-service/internal/domain/mocks"
	"github.com/avc/boleto-interest-service/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withURLParam добавляет параметр маршрута chi в запрос
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func recalculatedBoleto() *domain.Boleto {
	return &domain.Boleto{
		ID:                       "id-1",
		Code:                     "X",
		DueDate:                  pgtype.Date{Time: time.Date(2024, 6, 23, 0, 0, 0, 0, time.UTC), Valid: true},
		Amount:                   decimal.RequireFromString("102.132"),
		RecipientName:            "ACME",
		Type:                     "NPC",
		OriginalAmount:           decimal.NewNullDecimal(decimal.NewFromInt(100)),
		PaymentDate:              pgtype.Date{Time: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), Valid: true},
		InterestAmountCalculated: decimal.NewNullDecimal(decimal.RequireFromString("0.132")),
		FineAmountCalculated:     decimal.NewNullDecimal(decimal.NewFromInt(2)),
	}
}

func TestBoletoHandler_CalcInterest(t *testing.T) {
	mockService := domainmocks.NewBoletoServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBoletoHandler(mockService, domainmocks.NewBatchRecalculatorMock(t), 10, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Recalculate(mock.Anything, "X", "2024-06-20").Return(recalculatedBoleto(), nil).Once()

		body := `{"bar_code":"X","payment_date":"2024-06-20"}`
		req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CalcInterest(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "2024-06-23", result["due_date"])
		assert.Equal(t, "2024-06-20", result["payment_date"])
		assert.Equal(t, "102.132", result["amount"])
		assert.Equal(t, "100", result["original_amount"])
		assert.Equal(t, "0.132", result["interest_amount_calculated"])
		assert.Equal(t, "2", result["fine_amount_calculated"])
		assert.NotContains(t, result, "code")
		assert.NotContains(t, result, "type")
	})

	t.Run("Missing field", func(t *testing.T) {
		body := `{"bar_code":"X"}`
		req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CalcInterest(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest", bytes.NewBufferString(`{"bar_code":}`))
		w := httptest.NewRecorder()

		handler.CalcInterest(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	statusCases := []struct {
		name   string
		err    error
		status int
	}{
		{"Invalid payment date", domain.ErrInvalidInput, http.StatusBadRequest},
		{"Remote unavailable", domain.ErrServiceUnavailable, http.StatusServiceUnavailable},
		{"Not found", domain.ErrBoletoNotFound, http.StatusNotFound},
		{"Invalid type", domain.ErrInvalidType, http.StatusUnprocessableEntity},
		{"Not expired", domain.ErrNotExpired, http.StatusConflict},
		{"Storage failure", domain.ErrStorageFailure, http.StatusInternalServerError},
	}

	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService.EXPECT().Recalculate(mock.Anything, "X", "2024-06-20").Return(nil, tc.err).Once()

			body := `{"bar_code":"X","payment_date":"2024-06-20"}`
			req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			handler.CalcInterest(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestBoletoHandler_CalcInterestBatch(t *testing.T) {
	mockBatch := domainmocks.NewBatchRecalculatorMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBoletoHandler(domainmocks.NewBoletoServiceMock(t), mockBatch, 2, logger)

	t.Run("Mixed results", func(t *testing.T) {
		requests := []domain.RecalculationRequest{
			{BarCode: "X", PaymentDate: "2024-06-20"},
			{BarCode: "Y", PaymentDate: "2024-06-20"},
		}
		mockBatch.EXPECT().Recalculate(mock.Anything, requests).Return([]domain.RecalculationResult{
			{BarCode: "X", Boleto: recalculatedBoleto()},
			{BarCode: "Y", Err: domain.ErrNotExpired},
		}).Once()

		body := `[{"bar_code":"X","payment_date":"2024-06-20"},{"bar_code":"Y","payment_date":"2024-06-20"}]`
		req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest/batch", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CalcInterestBatch(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result []batchItemResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 2)
		assert.Equal(t, http.StatusOK, result[0].Status)
		require.NotNil(t, result[0].Boleto)
		assert.Equal(t, "102.132", result[0].Boleto.Amount.String())
		assert.Equal(t, "Y", result[1].BarCode)
		assert.Equal(t, http.StatusConflict, result[1].Status)
		assert.Nil(t, result[1].Boleto)
		assert.NotEmpty(t, result[1].Error)
	})

	t.Run("Batch over limit", func(t *testing.T) {
		body := `[{"bar_code":"X","payment_date":"2024-06-20"},{"bar_code":"Y","payment_date":"2024-06-20"},{"bar_code":"Z","payment_date":"2024-06-20"}]`
		req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest/batch", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.CalcInterestBatch(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockBatch.AssertNotCalled(t, "Recalculate", mock.Anything, mock.Anything)
	})

	t.Run("Empty batch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/boletoservice/calc-interest/batch", bytes.NewBufferString(`[]`))
		w := httptest.NewRecorder()

		handler.CalcInterestBatch(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBoletoHandler_Reads(t *testing.T) {
	mockService := domainmocks.NewBoletoServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBoletoHandler(mockService, domainmocks.NewBatchRecalculatorMock(t), 10, logger)

	t.Run("List", func(t *testing.T) {
		mockService.EXPECT().FindAll(mock.Anything).Return([]*domain.Boleto{recalculatedBoleto()}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/boletoservice/boletos", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result []map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 1)
		assert.Equal(t, "102.132", result[0]["amount"])
		assert.Equal(t, "2024-06-23", result[0]["due_date"])
		for _, hidden := range []string{"id", "code", "recipient_name", "recipient_document", "type"} {
			assert.NotContains(t, result[0], hidden)
		}
	})

	t.Run("List empty", func(t *testing.T) {
		mockService.EXPECT().FindAll(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/boletoservice/boletos", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Count", func(t *testing.T) {
		mockService.EXPECT().Count(mock.Anything).Return(int64(7), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/boletoservice/boletos/count", nil)
		w := httptest.NewRecorder()

		handler.Count(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":7}`, w.Body.String())
	})

	t.Run("Get hides lookup fields", func(t *testing.T) {
		mockService.EXPECT().FindByID(mock.Anything, "id-1").Return(recalculatedBoleto(), nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/boletoservice/boletos/id-1", nil), "id", "id-1")
		w := httptest.NewRecorder()

		handler.Get(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "0.132", result["interest_amount_calculated"])
		for _, hidden := range []string{"id", "code", "recipient_name", "recipient_document", "type"} {
			assert.NotContains(t, result, hidden)
		}
	})

	t.Run("Get not found", func(t *testing.T) {
		mockService.EXPECT().FindByID(mock.Anything, "id-9").Return(nil, domain.ErrBoletoNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/boletoservice/boletos/id-9", nil), "id", "id-9")
		w := httptest.NewRecorder()

		handler.Get(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteByID(mock.Anything, "id-1").Return(nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/boletoservice/boletos/id-1", nil), "id", "id-1")
		w := httptest.NewRecorder()

		handler.Delete(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete error", func(t *testing.T) {
		mockService.EXPECT().DeleteByID(mock.Anything, "id-1").Return(errors.New("db error")).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/boletoservice/boletos/id-1", nil), "id", "id-1")
		w := httptest.NewRecorder()

		handler.Delete(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUserHandler_Authenticate(t *testing.T) {
	mockAuth := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewUserHandler(domainmocks.NewUserServiceMock(t), mockAuth, logger)

	t.Run("Success", func(t *testing.T) {
		token := &domain.AuthToken{Token: "jwt", Expiration: "2024-06-20T12:10:00Z"}
		mockAuth.EXPECT().Authenticate(mock.Anything, "ana@example.com", "secret123").Return(token, nil).Once()

		body := `{"email":"ana@example.com","secret":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/authenticate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Authenticate(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"jwt","expiration":"2024-06-20T12:10:00Z"}`, w.Body.String())
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockAuth.EXPECT().Authenticate(mock.Anything, "ana@example.com", "wrong").
			Return(nil, domain.ErrInvalidCredentials).Once()

		body := `{"email":"ana@example.com","secret":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/authenticate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Authenticate(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/authenticate", bytes.NewBufferString(`{"email":"ana@example.com"}`))
		w := httptest.NewRecorder()

		handler.Authenticate(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_AddUser(t *testing.T) {
	mockUsers := domainmocks.NewUserServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewUserHandler(mockUsers, domainmocks.NewAuthServiceMock(t), logger)

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{ID: "id-1", Name: "Ana", Email: "ana@example.com", SecretHash: "hash"}
		mockUsers.EXPECT().Add(mock.Anything, "Ana", "ana@example.com", "secret123").Return(user, nil).Once()

		body := `{"name":"Ana","email":"ana@example.com","secret":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/addUser", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.AddUser(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("User exists", func(t *testing.T) {
		mockUsers.EXPECT().Add(mock.Anything, "Ana", "ana@example.com", "secret123").Return(nil, domain.ErrUserExists).Once()

		body := `{"name":"Ana","email":"ana@example.com","secret":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/addUser", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.AddUser(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid email", func(t *testing.T) {
		body := `{"name":"Ana","email":"not-an-email","secret":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/addUser", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.AddUser(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_UpdateDeleteGet(t *testing.T) {
	mockUsers := domainmocks.NewUserServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewUserHandler(mockUsers, domainmocks.NewAuthServiceMock(t), logger)

	t.Run("Update success", func(t *testing.T) {
		mockUsers.EXPECT().Update(mock.Anything, "id-1", "Ana Maria", "", "").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/updateUser", bytes.NewBufferString(`{"id":"id-1","name":"Ana Maria"}`))
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update not found", func(t *testing.T) {
		mockUsers.EXPECT().Update(mock.Anything, "id-9", "Ana", "", "").Return(domain.ErrUserNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/updateUser", bytes.NewBufferString(`{"id":"id-9","name":"Ana"}`))
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update without id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/updateUser", bytes.NewBufferString(`{"name":"Ana"}`))
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete not found", func(t *testing.T) {
		mockUsers.EXPECT().Delete(mock.Anything, "id-9").Return(domain.ErrUserNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/user/deleteUser/id-9", nil), "user-id", "id-9")
		w := httptest.NewRecorder()

		handler.DeleteUser(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Get success", func(t *testing.T) {
		mockUsers.EXPECT().Get(mock.Anything, "id-1").Return(&domain.User{ID: "id-1", Email: "ana@example.com"}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/user/getUser/id-1", nil), "user-id", "id-1")
		w := httptest.NewRecorder()

		handler.GetUser(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var user domain.User
		require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
		assert.Equal(t, "ana@example.com", user.Email)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	token, _, err := jwtManager.Generate("ana@example.com")
	require.NoError(t, err)

	middleware := AuthMiddleware(jwtManager)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmail(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "ana@example.com", email)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Raw token without Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token signed with other secret", func(t *testing.T) {
		other, _, err := jwt.NewManager("other-secret", time.Hour).Generate("ana@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
