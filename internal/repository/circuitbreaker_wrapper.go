package repository

import (
	"context"
	"errors"

	"github.com/guttosm/order-service/internal/circuitbreaker"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
)

// OrderRepositoryWithCircuitBreaker wraps an order repository with circuit breaker protection.
type OrderRepositoryWithCircuitBreaker struct {
	repo           OrderRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrderRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrderRepositoryWithCircuitBreaker(repo OrderRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *OrderRepositoryWithCircuitBreaker {
	return &OrderRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns a page of orders with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) List(ctx context.Context, page dto.Page) ([]model.Order, int64, error) {
	var (
		orders []model.Order
		total  int64
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		orders, total, cbErr = r.repo.List(ctx, page)
		return cbErr
	})
	return orders, total, err
}

// Filter returns a filtered page of orders with circuit breaker protection.
func (r *OrderRepositoryWithCircuitBreaker) Filter(ctx context.Context, filter OrderFilter, page dto.Page) ([]model.Order, int64, error) {
	var (
		orders []model.Order
		total  int64
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		orders, total, cbErr = r.repo.Filter(ctx, filter, page)
		return cbErr
	})
	return orders, total, err
}

// Transaction runs the whole transaction as one protected call.
func (r *OrderRepositoryWithCircuitBreaker) Transaction(ctx context.Context, fn func(tx OrderTx) error) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Transaction(ctx, fn)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrderRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ReferenceRepositoryWithCircuitBreaker wraps a reference repository with circuit breaker protection.
type ReferenceRepositoryWithCircuitBreaker struct {
	repo           ReferenceRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewReferenceRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewReferenceRepositoryWithCircuitBreaker(repo ReferenceRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ReferenceRepositoryWithCircuitBreaker {
	return &ReferenceRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ClientExists checks a client with circuit breaker protection.
func (r *ReferenceRepositoryWithCircuitBreaker) ClientExists(ctx context.Context, id uint) (bool, error) {
	var exists bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		exists, cbErr = r.repo.ClientExists(ctx, id)
		return cbErr
	})
	return exists, err
}

// CategoryExists checks a category with circuit breaker protection.
func (r *ReferenceRepositoryWithCircuitBreaker) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var exists bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		exists, cbErr = r.repo.CategoryExists(ctx, id)
		return cbErr
	})
	return exists, err
}

// ExistingProductIDs looks up products with circuit breaker protection.
func (r *ReferenceRepositoryWithCircuitBreaker) ExistingProductIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	var found map[uint]bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		found, cbErr = r.repo.ExistingProductIDs(ctx, ids)
		return cbErr
	})
	return found, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ReferenceRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. An open circuit drops the entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries. An open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
