package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"go.uber.org/zap"
)

// BoletoServiceConfig параметры перерасчета
type BoletoServiceConfig struct {
	ValidType string
	Now       func() time.Time // по умолчанию time.Now
}

// BoletoService реализует domain.BoletoService
type BoletoService struct {
	client     domain.BoletoClient
	repo       domain.BoletoRepository
	calculator *InterestCalculator
	validType  string
	now        func() time.Time
	logger     *zap.Logger
}

// NewBoletoService создает новый BoletoService
func NewBoletoService(
	client domain.BoletoClient,
	repo domain.BoletoRepository,
	calculator *InterestCalculator,
	cfg BoletoServiceConfig,
	logger *zap.Logger,
) *BoletoService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &BoletoService{
		client:     client,
		repo:       repo,
		calculator: calculator,
		validType:  cfg.ValidType,
		now:        cfg.Now,
		logger:     logger,
	}
}

// Recalculate получает боллет из внешней системы, начисляет штраф и проценты
// и сохраняет результат. Все ошибки приводятся к sentinel-ошибкам domain.
func (s *BoletoService) Recalculate(ctx context.Context, barCode, paymentDate string) (*domain.Boleto, error) {
	if barCode == "" || paymentDate == "" {
		return nil, fmt.Errorf("%w: empty bar code or payment date", domain.ErrInvalidInput)
	}

	boleto, err := s.client.FetchByCode(ctx, barCode)
	if err != nil {
		s.logger.Warn("boleto lookup failed", zap.String("bar_code", barCode), zap.Error(err))
		if errors.Is(err, domain.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}

	if boleto == nil || boleto.Code == "" {
		return nil, domain.ErrBoletoNotFound
	}

	if boleto.Type != s.validType {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, boleto.Type)
	}

	if !s.IsExpired(boleto) {
		return nil, domain.ErrNotExpired
	}

	recalculated, err := s.calculator.Calculate(boleto, paymentDate)
	if err != nil {
		return nil, err
	}

	saved, err := s.PersistRecalculated(ctx, recalculated)
	if err != nil {
		s.logger.Error("failed to persist recalculated boleto", zap.String("bar_code", barCode), zap.Error(err))
		return nil, err
	}

	s.logger.Info("boleto recalculated",
		zap.String("bar_code", barCode),
		zap.String("amount", saved.Amount.String()),
	)

	return saved, nil
}

// IsExpired сообщает, что конец дня погашения (локальное время) еще не наступил.
// Несмотря на имя, true означает, что срок оплаты не прошел; Recalculate
// отклоняет боллеты, для которых возвращается false.
func (s *BoletoService) IsExpired(boleto *domain.Boleto) bool {
	y, m, d := boleto.DueDate.Time.Date()
	endOfDueDay := time.Date(y, m, d, 23, 59, 59, 999999999, time.Local)

	return endOfDueDay.After(s.now())
}

// PersistRecalculated сохраняет боллет: перезаписывает запись с тем же штрихкодом
// или вставляет новую. Проверка и запись не атомарны.
func (s *BoletoService) PersistRecalculated(ctx context.Context, boleto *domain.Boleto) (*domain.Boleto, error) {
	existing, err := s.repo.FindByCode(ctx, boleto.Code)
	switch {
	case err == nil:
		boleto.ID = existing.ID
		if err := s.repo.Save(ctx, boleto); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
		}

	case errors.Is(err, domain.ErrBoletoNotFound):
		if err := s.repo.Insert(ctx, boleto); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
		}

	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	return boleto, nil
}

// FindAll получает все сохраненные боллеты
func (s *BoletoService) FindAll(ctx context.Context) ([]*domain.Boleto, error) {
	boletos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("boleto service: failed to get boletos: %w", err)
	}

	return boletos, nil
}

// FindByID получает сохраненный боллет по ключу
func (s *BoletoService) FindByID(ctx context.Context, id string) (*domain.Boleto, error) {
	boleto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrBoletoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("boleto service: failed to get boleto %q: %w", id, err)
	}

	return boleto, nil
}

// DeleteByID удаляет сохраненный боллет
func (s *BoletoService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrBoletoNotFound) {
			return err
		}
		return fmt.Errorf("boleto service: failed to delete boleto %q: %w", id, err)
	}

	return nil
}

// Count возвращает количество сохраненных боллетов
func (s *BoletoService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("boleto service: failed to count boletos: %w", err)
	}

	return count, nil
}
