package worker

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/bookery/bookery/internal/adapter/fulfillment"
	"github.com/bookery/bookery/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	OrdersForFulfillment(ctx context.Context, limit int) ([]model.Order, error)
	CheckFulfillment(ctx context.Context, orderID int64) (*model.Fulfillment, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// FulfillmentProcessor polls the fulfillment provider and advances order
// statuses concurrently.
type FulfillmentProcessor struct {
	facade       StoreFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewFulfillmentProcessor constructs fulfillment processor worker pool.
func NewFulfillmentProcessor(facade StoreFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *FulfillmentProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &FulfillmentProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *FulfillmentProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *FulfillmentProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *FulfillmentProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *FulfillmentProcessor) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.OrdersForFulfillment(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch orders for fulfillment failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *FulfillmentProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *FulfillmentProcessor) handleOrder(ctx context.Context, order model.Order) {
	result, err := p.facade.CheckFulfillment(ctx, order.ID)
	if err != nil {
		switch e := err.(type) {
		case fulfillment.TooManyRequestsError:
			p.logger.Warn("fulfillment rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, fulfillment.ErrOrderUnknown) {
				time.Sleep(p.pollInterval)
				return
			}
			p.logger.Error("fulfillment fetch failed", slog.String("order", strconv.FormatInt(order.ID, 10)), slog.String("error", err.Error()))
		}
		return
	}

	status, ok := result.Status.OrderStatus()
	if !ok {
		// provider still reports PENDING, nothing to record yet
		return
	}

	if err := p.facade.UpdateOrderStatus(ctx, order.ID, status); err != nil {
		p.logger.Error("update order status failed", slog.String("order", strconv.FormatInt(order.ID, 10)), slog.String("error", err.Error()))
	}
}
