// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// OrderFilter restricts orders to one client and, optionally, to those having
// a line whose product matches ProductID and/or CategoryID.
type OrderFilter struct {
	ClientID   uint
	ProductID  *uint
	CategoryID *uint
}

// OrderTx is the write surface available inside an order transaction.
// Every method fails when the write fails or affects no row.
type OrderTx interface {
	InsertOrder(ctx context.Context, order *model.Order) error
	InsertLine(ctx context.Context, line *model.OrderLine) error
	UpdateTotal(ctx context.Context, orderID uint, total decimal.Decimal) error
}

// OrderRepositoryInterface defines the interface for order repository operations.
type OrderRepositoryInterface interface {
	List(ctx context.Context, page dto.Page) ([]model.Order, int64, error)
	Filter(ctx context.Context, filter OrderFilter, page dto.Page) ([]model.Order, int64, error)
	// Transaction commits when fn returns nil and rolls back on error or panic.
	Transaction(ctx context.Context, fn func(tx OrderTx) error) error
}

// ReferenceRepositoryInterface answers existence questions about read-only reference data.
type ReferenceRepositoryInterface interface {
	ClientExists(ctx context.Context, id uint) (bool, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
	ExistingProductIDs(ctx context.Context, ids []uint) (map[uint]bool, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
