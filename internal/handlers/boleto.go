package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BoletoHandler обрабатывает запросы перерасчета и чтения боллетов
type BoletoHandler struct {
	boletoService domain.BoletoService
	batch         domain.BatchRecalculator
	maxBatchSize  int
	logger        *zap.Logger
}

// NewBoletoHandler создает новый BoletoHandler.
// maxBatchSize ограничивает число позиций в пакетном запросе.
func NewBoletoHandler(
	boletoService domain.BoletoService,
	batch domain.BatchRecalculator,
	maxBatchSize int,
	logger *zap.Logger,
) *BoletoHandler {
	if maxBatchSize < 1 {
		maxBatchSize = 1
	}

	return &BoletoHandler{
		boletoService: boletoService,
		batch:         batch,
		maxBatchSize:  maxBatchSize,
		logger:        logger,
	}
}

// boletoResponse поля, которые клиент видит после перерасчета
type boletoResponse struct {
	DueDate                  pgtype.Date         `json:"due_date"`
	Amount                   decimal.Decimal     `json:"amount"`
	OriginalAmount           decimal.NullDecimal `json:"original_amount"`
	PaymentDate              pgtype.Date         `json:"payment_date"`
	InterestAmountCalculated decimal.NullDecimal `json:"interest_amount_calculated"`
	FineAmountCalculated     decimal.NullDecimal `json:"fine_amount_calculated"`
}

func newBoletoResponse(b *domain.Boleto) *boletoResponse {
	if b == nil {
		return nil
	}

	return &boletoResponse{
		DueDate:                  b.DueDate,
		Amount:                   b.Amount,
		OriginalAmount:           b.OriginalAmount,
		PaymentDate:              b.PaymentDate,
		InterestAmountCalculated: b.InterestAmountCalculated,
		FineAmountCalculated:     b.FineAmountCalculated,
	}
}

type batchItemResponse struct {
	BarCode string          `json:"bar_code"`
	Status  int             `json:"status"`
	Boleto  *boletoResponse `json:"boleto,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

// recalculationStatus переводит результат перерасчета в HTTP статус
func recalculationStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrBoletoNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotExpired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CalcInterest пересчитывает штраф и проценты одного боллета
func (h *BoletoHandler) CalcInterest(w http.ResponseWriter, r *http.Request) {
	var req domain.RecalculationRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	boleto, err := h.boletoService.Recalculate(r.Context(), req.BarCode, req.PaymentDate)
	if err != nil {
		status := recalculationStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to recalculate boleto", zap.Error(err), zap.String("bar_code", req.BarCode))
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	if err := writeJSON(w, http.StatusOK, newBoletoResponse(boleto)); err != nil {
		h.logger.Error("failed to encode boleto", zap.Error(err))
	}
}

// CalcInterestBatch пересчитывает несколько боллетов через пул воркеров
func (h *BoletoHandler) CalcInterestBatch(w http.ResponseWriter, r *http.Request) {
	// Пустые поля отдельных позиций дают 400 в результате этой позиции
	var reqs []domain.RecalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(reqs) > h.maxBatchSize {
		http.Error(w, fmt.Sprintf("batch exceeds %d items", h.maxBatchSize), http.StatusBadRequest)
		return
	}

	results := h.batch.Recalculate(r.Context(), reqs)

	response := make([]batchItemResponse, len(results))
	for i, res := range results {
		status := recalculationStatus(res.Err)
		response[i] = batchItemResponse{
			BarCode: res.BarCode,
			Status:  status,
			Boleto:  newBoletoResponse(res.Boleto),
		}
		if res.Err != nil {
			response[i].Error = http.StatusText(status)
		}
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("failed to encode batch response", zap.Error(err))
	}
}

// List возвращает все сохраненные боллеты
func (h *BoletoHandler) List(w http.ResponseWriter, r *http.Request) {
	boletos, err := h.boletoService.FindAll(r.Context())
	if err != nil {
		h.logger.Error("failed to get boletos", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response := make([]*boletoResponse, 0, len(boletos))
	for _, b := range boletos {
		response = append(response, newBoletoResponse(b))
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("failed to encode boletos", zap.Error(err))
	}
}

// Count возвращает количество сохраненных боллетов
func (h *BoletoHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.boletoService.Count(r.Context())
	if err != nil {
		h.logger.Error("failed to count boletos", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, countResponse{Count: count}); err != nil {
		h.logger.Error("failed to encode count", zap.Error(err))
	}
}

// Get возвращает сохраненный боллет по ключу
func (h *BoletoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	boleto, err := h.boletoService.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBoletoNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get boleto", zap.Error(err), zap.String("id", id))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, newBoletoResponse(boleto)); err != nil {
		h.logger.Error("failed to encode boleto", zap.Error(err))
	}
}

// Delete удаляет сохраненный боллет
func (h *BoletoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.boletoService.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBoletoNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete boleto", zap.Error(err), zap.String("id", id))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
