// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// CreateOrderRequest represents the JSON request body for creating an order.
//
// Reference ids and amounts accept numbers or numeric strings; existence of the
// client and products is checked by the order service before anything is written.
//
// @Description Request to create an order with its lines
type CreateOrderRequest struct {
	// FechaPedido is the order date (YYYY-MM-DD, or a date-time).
	FechaPedido string `json:"fecha_pedido" validate:"required,date" example:"2024-05-01"`
	// ClientID references an existing client.
	ClientID ID `json:"client_id" validate:"required" swaggertype:"integer" example:"1"`
	// Detalle holds the order lines. Optional; an empty list yields a zero total.
	Detalle []OrderLineRequest `json:"detalle" validate:"omitempty,dive"`
} // @name CreateOrderRequest

// OrderLineRequest is one entry of CreateOrderRequest.Detalle.
type OrderLineRequest struct {
	ProductID ID     `json:"product_id" validate:"required" swaggertype:"integer" example:"3"`
	Cantidad  Amount `json:"cantidad" validate:"required,numeric" swaggertype:"number" example:"2"`
	Precio    Amount `json:"precio" validate:"required,numeric" swaggertype:"number" example:"19.99"`
} // @name OrderLineRequest

// FilterOrdersRequest carries the query parameters of the order filter endpoint.
// Empty optional values are treated as absent.
type FilterOrdersRequest struct {
	ClientID    string `form:"client_id" validate:"required"`
	CategoriaID string `form:"categoria_id"`
	ProductoID  string `form:"producto_id"`
}

// Client returns the parsed client id.
func (r *FilterOrdersRequest) Client() ID { return ParseID(r.ClientID) }

// Categoria returns the parsed category id, unset when absent.
func (r *FilterOrdersRequest) Categoria() ID { return ParseID(r.CategoriaID) }

// Producto returns the parsed product id, unset when absent.
func (r *FilterOrdersRequest) Producto() ID { return ParseID(r.ProductoID) }
