// Package model provides domain models for the order service.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer purchase (pedido). It is the aggregate root for its lines.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	FechaPedido Date            `gorm:"column:fecha_pedido;type:date;not null" json:"fecha_pedido"`
	ClientID    uint            `gorm:"column:client_id;not null;index" json:"client_id"`
	Total       decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null;default:0" json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Detalles []OrderLine `gorm:"foreignKey:PedidoID" json:"detalle_pedido,omitempty"`
	Cliente  *Client     `gorm:"foreignKey:ClientID" json:"cliente,omitempty"`
}

// TableName overrides GORM's pluralization for the Spanish schema.
func (Order) TableName() string { return "mnt_pedidos" }

// OrderLine is one product/quantity/price entry of an order (detalle de pedido).
type OrderLine struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	PedidoID   uint            `gorm:"column:pedido_id;not null;index" json:"pedido_id"`
	ProductoID uint            `gorm:"column:producto_id;not null;index" json:"producto_id"`
	Cantidad   decimal.Decimal `gorm:"column:cantidad;type:numeric(12,2);not null" json:"cantidad"`
	Precio     decimal.Decimal `gorm:"column:precio;type:numeric(12,2);not null" json:"precio"`
	SubTotal   decimal.Decimal `gorm:"column:sub_total;type:numeric(12,2);not null" json:"sub_total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Producto *Product `gorm:"foreignKey:ProductoID" json:"producto,omitempty"`
}

// TableName overrides GORM's pluralization for the Spanish schema.
func (OrderLine) TableName() string { return "mnt_detalle_pedidos" }

// MoneyScale is the number of decimals kept by the numeric(12,2) columns.
const MoneyScale = 2

// NewOrderLine builds a line for the given product with its subtotal computed.
// Cantidad, precio and the subtotal are rounded half away from zero to
// MoneyScale, the same way PostgreSQL stores them.
func NewOrderLine(productID uint, cantidad, precio decimal.Decimal) OrderLine {
	cantidad = cantidad.Round(MoneyScale)
	precio = precio.Round(MoneyScale)
	return OrderLine{
		ProductoID: productID,
		Cantidad:   cantidad,
		Precio:     precio,
		SubTotal:   cantidad.Mul(precio).Round(MoneyScale),
	}
}

// SumSubtotals returns the sum of the lines' subtotals, zero for no lines.
// The result is what the order total must be once the lines are stored.
func SumSubtotals(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.SubTotal)
	}
	return total
}
