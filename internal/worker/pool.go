package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc/boleto-interest-service/internal/domain"
	"go.uber.org/zap"
)

// ErrPoolStopped пул остановлен и не принимает задачи
var ErrPoolStopped = fmt.Errorf("%w: worker pool stopped", domain.ErrServiceUnavailable)

// task одна позиция пакетного перерасчета
type task struct {
	ctx  context.Context
	req  domain.RecalculationRequest
	done chan domain.RecalculationResult // буфер 1, воркер не блокируется
}

// Pool представляет пул воркеров для пакетного перерасчета боллетов.
// Реализует domain.BatchRecalculator.
type Pool struct {
	workers int
	queue   chan task
	service domain.BoletoService
	logger  *zap.Logger
	wg      sync.WaitGroup

	mu       sync.RWMutex
	stopped  bool
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool создает новый worker pool
func NewPool(workers int, queueSize int, service domain.BoletoService, logger *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &Pool{
		workers: workers,
		queue:   make(chan task, queueSize),
		service: service,
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop останавливает worker pool и ждет завершения воркеров
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)

		p.mu.Lock()
		p.stopped = true
		close(p.queue)
		p.mu.Unlock()

		p.wg.Wait()
		p.drain()
	})
}

// Recalculate выполняет перерасчет всех запросов и возвращает результаты в порядке запросов.
// Постановка в очередь блокируется, пока есть место или не отменен ctx.
func (p *Pool) Recalculate(ctx context.Context, requests []domain.RecalculationRequest) []domain.RecalculationResult {
	results := make([]domain.RecalculationResult, len(requests))
	tasks := make([]*task, len(requests))

	for i, req := range requests {
		t := &task{
			ctx:  ctx,
			req:  req,
			done: make(chan domain.RecalculationResult, 1),
		}
		if err := p.enqueue(ctx, t); err != nil {
			results[i] = domain.RecalculationResult{BarCode: req.BarCode, Err: err}
			continue
		}
		tasks[i] = t
	}

	for i, t := range tasks {
		if t == nil {
			continue
		}

		select {
		case results[i] = <-t.done:
		case <-ctx.Done():
			results[i] = domain.RecalculationResult{BarCode: t.req.BarCode, Err: ctx.Err()}
		case <-p.quit:
			// Воркеры дорабатывают очередь при остановке
			results[i] = <-t.done
		}
	}

	return results
}

func (p *Pool) enqueue(ctx context.Context, t *task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.queue <- *t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// worker обрабатывает задачи из очереди до ее закрытия
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Debug("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("worker stopping", zap.Int("worker_id", id))
			p.drain()
			return
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			t.done <- p.process(t)
		}
	}
}

// drain отвечает ErrPoolStopped на оставшиеся задачи
func (p *Pool) drain() {
	for {
		select {
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			t.done <- domain.RecalculationResult{BarCode: t.req.BarCode, Err: ErrPoolStopped}
		default:
			return
		}
	}
}

// process выполняет перерасчет одного боллета
func (p *Pool) process(t task) domain.RecalculationResult {
	boleto, err := p.service.Recalculate(t.ctx, t.req.BarCode, t.req.PaymentDate)
	if err != nil {
		p.logger.Debug("batch item failed",
			zap.String("bar_code", t.req.BarCode),
			zap.Error(err),
		)
	}

	return domain.RecalculationResult{
		BarCode: t.req.BarCode,
		Boleto:  boleto,
		Err:     err,
	}
}
