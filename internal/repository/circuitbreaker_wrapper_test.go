//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/order-service/internal/circuitbreaker"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

type fakeOrderRepo struct {
	calls  int
	err    error
	orders []model.Order
}

func (f *fakeOrderRepo) List(_ context.Context, _ dto.Page) ([]model.Order, int64, error) {
	f.calls++
	return f.orders, int64(len(f.orders)), f.err
}

func (f *fakeOrderRepo) Filter(_ context.Context, _ OrderFilter, _ dto.Page) ([]model.Order, int64, error) {
	f.calls++
	return f.orders, int64(len(f.orders)), f.err
}

func (f *fakeOrderRepo) Transaction(_ context.Context, fn func(tx OrderTx) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type fakeReferenceRepo struct {
	calls int
	err   error
}

func (f *fakeReferenceRepo) ClientExists(_ context.Context, id uint) (bool, error) {
	f.calls++
	return id == 1, f.err
}

func (f *fakeReferenceRepo) CategoryExists(_ context.Context, id uint) (bool, error) {
	f.calls++
	return id == 1, f.err
}

func (f *fakeReferenceRepo) ExistingProductIDs(_ context.Context, ids []uint) (map[uint]bool, error) {
	f.calls++
	found := map[uint]bool{}
	for _, id := range ids {
		if id == 1 {
			found[id] = true
		}
	}
	return found, f.err
}

type fakeLogsRepo struct {
	calls int
	err   error
}

func (f *fakeLogsRepo) Create(_ context.Context, _ *LogEntryDocument) error {
	f.calls++
	return f.err
}

func (f *fakeLogsRepo) CreateMany(_ context.Context, _ []*LogEntryDocument) error {
	f.calls++
	return f.err
}

func (f *fakeLogsRepo) Query(_ context.Context, _ LogQueryOptions) ([]*LogEntryDocument, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeLogsRepo) Count(_ context.Context, _ LogQueryOptions) (int64, error) {
	f.calls++
	return 0, f.err
}

func newTestBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test",
	})
}

func TestOrderRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		inner := &fakeOrderRepo{orders: []model.Order{{ID: 1}, {ID: 2}}}
		repo := NewOrderRepositoryWithCircuitBreaker(inner, newTestBreaker())

		orders, total, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, int64(2), total)

		orders, total, err = repo.Filter(ctx, OrderFilter{ClientID: 1}, 1)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, int64(2), total)

		ran := false
		require.NoError(t, repo.Transaction(ctx, func(OrderTx) error {
			ran = true
			return nil
		}))
		assert.True(t, ran)
	})

	t.Run("transaction error from fn counts as failure", func(t *testing.T) {
		cb := newTestBreaker()
		repo := NewOrderRepositoryWithCircuitBreaker(&fakeOrderRepo{}, cb)

		for i := 0; i < 2; i++ {
			err := repo.Transaction(ctx, func(OrderTx) error { return errStore })
			assert.ErrorIs(t, err, errStore)
		}
		assert.True(t, cb.IsOpen())
	})

	t.Run("open circuit short-circuits calls", func(t *testing.T) {
		inner := &fakeOrderRepo{err: errStore}
		repo := NewOrderRepositoryWithCircuitBreaker(inner, newTestBreaker())

		for i := 0; i < 2; i++ {
			_, _, err := repo.List(ctx, 1)
			assert.ErrorIs(t, err, errStore)
		}

		_, _, err := repo.Filter(ctx, OrderFilter{ClientID: 1}, 1)
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.Equal(t, 2, inner.calls)
		assert.Same(t, repo.circuitBreaker, repo.GetCircuitBreaker())
	})
}

func TestReferenceRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		repo := NewReferenceRepositoryWithCircuitBreaker(&fakeReferenceRepo{}, newTestBreaker())

		ok, err := repo.ClientExists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.CategoryExists(ctx, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		found, err := repo.ExistingProductIDs(ctx, []uint{1, 2})
		require.NoError(t, err)
		assert.Equal(t, map[uint]bool{1: true}, found)
	})

	t.Run("open circuit short-circuits calls", func(t *testing.T) {
		inner := &fakeReferenceRepo{err: errStore}
		cb := newTestBreaker()
		repo := NewReferenceRepositoryWithCircuitBreaker(inner, cb)

		_, _ = repo.ClientExists(ctx, 1)
		_, _ = repo.CategoryExists(ctx, 1)

		_, err := repo.ExistingProductIDs(ctx, []uint{1})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.Equal(t, 2, inner.calls)
		assert.Same(t, cb, repo.GetCircuitBreaker())
	})
}

func TestLogsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("failures surface while closed", func(t *testing.T) {
		repo := NewLogsRepositoryWithCircuitBreaker(&fakeLogsRepo{err: errStore}, newTestBreaker())
		assert.ErrorIs(t, repo.Create(ctx, &LogEntryDocument{}), errStore)
	})

	t.Run("open circuit drops writes silently", func(t *testing.T) {
		inner := &fakeLogsRepo{err: errStore}
		cb := newTestBreaker()
		repo := NewLogsRepositoryWithCircuitBreaker(inner, cb)

		_ = repo.Create(ctx, &LogEntryDocument{})
		_ = repo.CreateMany(ctx, []*LogEntryDocument{{}})
		require.True(t, cb.IsOpen())

		assert.NoError(t, repo.Create(ctx, &LogEntryDocument{}))
		assert.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{}}))
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("open circuit fails reads", func(t *testing.T) {
		inner := &fakeLogsRepo{err: errStore}
		cb := newTestBreaker()
		repo := NewLogsRepositoryWithCircuitBreaker(inner, cb)

		_, _ = repo.Query(ctx, LogQueryOptions{})
		_, _ = repo.Count(ctx, LogQueryOptions{})

		_, err := repo.Query(ctx, LogQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		_, err = repo.Count(ctx, LogQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		assert.Same(t, cb, repo.GetCircuitBreaker())
	})
}
