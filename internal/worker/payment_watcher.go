package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sugarline/cakeshop/internal/adapter/bakery"
	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// StorefrontFacade exposes the subset of application functionality required by the watcher.
type StorefrontFacade interface {
	ExpiredPayments(ctx context.Context, limit int) ([]repository.PendingPayment, error)
	CancelOrder(ctx context.Context, token, orderID string) error
	ClearPendingPayment(ctx context.Context, payment repository.PendingPayment) error
}

// PaymentWatcher sweeps QR payments whose countdown lapsed and cancels the
// backing orders concurrently.
type PaymentWatcher struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan repository.PendingPayment
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentWatcher constructs the payment watcher worker pool.
func NewPaymentWatcher(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentWatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentWatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan repository.PendingPayment, batchSize*workers),
	}
}

// Start launches background processing.
func (w *PaymentWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (w *PaymentWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *PaymentWatcher) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAndDispatch(ctx)
		}
	}
}

func (w *PaymentWatcher) fetchAndDispatch(ctx context.Context) {
	payments, err := w.facade.ExpiredPayments(ctx, w.batchSize)
	if err != nil {
		w.logger.Error("fetch expired payments failed", slog.String("error", err.Error()))
		return
	}
	for _, payment := range payments {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- payment:
		}
	}
}

func (w *PaymentWatcher) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case payment, ok := <-w.jobs:
			if !ok {
				return
			}
			w.handlePayment(ctx, payment)
		}
	}
}

func (w *PaymentWatcher) handlePayment(ctx context.Context, payment repository.PendingPayment) {
	err := w.facade.CancelOrder(ctx, payment.Token, payment.OrderID)
	if err != nil {
		switch e := err.(type) {
		case bakery.TooManyRequestsError:
			w.logger.Warn("order cancel rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
			return
		default:
			// An order already paid or cancelled elsewhere no longer exists in
			// a cancellable state; treat that as settled and drop the entry.
			if !errors.Is(err, domainErrors.ErrNotFound) {
				w.logger.Error("cancel expired order failed",
					slog.String("order", payment.OrderID), slog.String("error", err.Error()))
				return
			}
		}
	}

	if err := w.facade.ClearPendingPayment(ctx, payment); err != nil {
		w.logger.Error("clear pending payment failed",
			slog.String("order", payment.OrderID), slog.String("error", err.Error()))
	}
}
