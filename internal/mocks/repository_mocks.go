// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrderRepositoryInterface) List(ctx context.Context, page dto.Page) ([]model.Order, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepositoryInterface) Filter(ctx context.Context, filter repository.OrderFilter, page dto.Page) ([]model.Order, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

// Transaction runs fn against the OrderTx given as the second return value
// when one is configured, then returns fn's error or the configured error.
//
//	repo.On("Transaction", mock.Anything, mock.Anything).Return(nil, tx)
func (m *MockOrderRepositoryInterface) Transaction(ctx context.Context, fn func(tx repository.OrderTx) error) error {
	args := m.Called(ctx, fn)
	if len(args) > 1 {
		if tx, ok := args.Get(1).(repository.OrderTx); ok {
			if err := fn(tx); err != nil {
				return err
			}
		}
	}
	return args.Error(0)
}

type MockOrderTx struct {
	mock.Mock
}

func (m *MockOrderTx) InsertOrder(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderTx) InsertLine(ctx context.Context, line *model.OrderLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockOrderTx) UpdateTotal(ctx context.Context, orderID uint, total decimal.Decimal) error {
	args := m.Called(ctx, orderID, total)
	return args.Error(0)
}

type MockReferenceRepositoryInterface struct {
	mock.Mock
}

func (m *MockReferenceRepositoryInterface) ClientExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepositoryInterface) CategoryExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepositoryInterface) ExistingProductIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]bool), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
