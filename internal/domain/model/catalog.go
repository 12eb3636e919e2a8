package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the purchaser referenced by orders. Read-only from this service.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"column:nombre;not null" json:"nombre"`
	Apellido  string    `gorm:"column:apellido" json:"apellido,omitempty"`
	Email     string    `gorm:"column:email;index" json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides GORM's pluralization for the Spanish schema.
func (Client) TableName() string { return "mnt_clientes" }

// Category groups products.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"column:nombre;not null" json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides GORM's pluralization for the Spanish schema.
func (Category) TableName() string { return "ctl_categoria" }

// Product belongs to one Category.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nombre      string          `gorm:"column:nombre;not null" json:"nombre"`
	Precio      decimal.Decimal `gorm:"column:precio;type:numeric(12,2);not null;default:0" json:"precio"`
	CategoriaID uint            `gorm:"column:categoria_id;not null;index" json:"categoria_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Categoria *Category `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
}

// TableName overrides GORM's pluralization for the Spanish schema.
func (Product) TableName() string { return "ctl_productos" }
