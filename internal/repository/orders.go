package repository

import (
	"context"
	"fmt"

	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository provides order persistence on PostgreSQL.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(pg *Postgres) *OrderRepository {
	return &OrderRepository{db: pg.DB}
}

// withOrderRelations eager-loads lines with product and category, and the client.
// Each relation is one batched query per page, never one per row.
func withOrderRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Detalles", func(db *gorm.DB) *gorm.DB {
			return db.Order("mnt_detalle_pedidos.id")
		}).
		Preload("Detalles.Producto.Categoria").
		Preload("Cliente")
}

func paginate(page dto.Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.Offset()).Limit(page.Limit())
	}
}

// List returns one page of orders ordered by id, with the total order count.
func (r *OrderRepository) List(ctx context.Context, page dto.Page) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})
	return r.findPage(query, page)
}

// Filter returns one page of the client's orders. When a product or category is
// given, an order matches only if a single line's product satisfies both.
func (r *OrderRepository) Filter(ctx context.Context, filter OrderFilter, page dto.Page) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("mnt_pedidos.client_id = ?", filter.ClientID)

	if filter.ProductID != nil || filter.CategoryID != nil {
		lines := r.db.
			Table("mnt_detalle_pedidos AS d").
			Select("1").
			Joins("JOIN ctl_productos AS p ON p.id = d.producto_id").
			Where("d.pedido_id = mnt_pedidos.id")
		if filter.ProductID != nil {
			lines = lines.Where("p.id = ?", *filter.ProductID)
		}
		if filter.CategoryID != nil {
			lines = lines.Where("p.categoria_id = ?", *filter.CategoryID)
		}
		query = query.Where("EXISTS (?)", lines)
	}

	return r.findPage(query, page)
}

func (r *OrderRepository) findPage(query *gorm.DB, page dto.Page) ([]model.Order, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	orders := []model.Order{}
	if total == 0 || int64(page.Offset()) >= total {
		return orders, total, nil
	}

	if err := query.
		Scopes(withOrderRelations, paginate(page)).
		Order("mnt_pedidos.id").
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}
	return orders, total, nil
}

// Transaction runs fn in a database transaction.
func (r *OrderRepository) Transaction(ctx context.Context, fn func(tx OrderTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderTx{db: tx})
	})
}

// orderTx implements OrderTx on a GORM transaction handle.
type orderTx struct {
	db *gorm.DB
}

func (t *orderTx) InsertOrder(ctx context.Context, order *model.Order) error {
	res := t.db.WithContext(ctx).Omit(clause.Associations).Create(order)
	if res.Error != nil {
		return fmt.Errorf("%w: %w", ErrOrderInsert, res.Error)
	}
	if res.RowsAffected == 0 || order.ID == 0 {
		return fmt.Errorf("%w: %w", ErrOrderInsert, ErrNoRowsAffected)
	}
	return nil
}

func (t *orderTx) InsertLine(ctx context.Context, line *model.OrderLine) error {
	res := t.db.WithContext(ctx).Omit(clause.Associations).Create(line)
	if res.Error != nil {
		return fmt.Errorf("%w: %w", ErrLineInsert, res.Error)
	}
	if res.RowsAffected == 0 || line.ID == 0 {
		return fmt.Errorf("%w: %w", ErrLineInsert, ErrNoRowsAffected)
	}
	return nil
}

func (t *orderTx) UpdateTotal(ctx context.Context, orderID uint, total decimal.Decimal) error {
	res := t.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("total", total)
	if res.Error != nil {
		return fmt.Errorf("%w: %w", ErrTotalUpdate, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %w", ErrTotalUpdate, ErrNoRowsAffected)
	}
	return nil
}
