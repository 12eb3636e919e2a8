// Package http exposes the order service over HTTP with gin.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/i18n"
	"github.com/guttosm/order-service/internal/middleware"
	"github.com/guttosm/order-service/internal/repository"
	"github.com/guttosm/order-service/internal/service"
	"github.com/guttosm/order-service/internal/validation"
)

// OrderHandler serves the /api/pedidos routes.
//
// Every domain failure is answered with 422: validation failures carry the
// field-keyed messages, store failures carry the error text.
type OrderHandler struct {
	orders service.OrderService
	logs   service.LoggingService
}

// NewOrderHandler creates an OrderHandler. logs may be nil.
func NewOrderHandler(orders service.OrderService, logs service.LoggingService) *OrderHandler {
	return &OrderHandler{orders: orders, logs: logs}
}

// ListOrders handles GET /api/pedidos.
//
// @Summary      List orders
// @Description  Returns one page of 10 orders with their client, lines, products and categories.
// @Tags         Pedidos
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Success      200 {object} dto.SuccessResponse{data=dto.Paginated[model.Order]} "Pedidos"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Error al traer los pedidos"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/pedidos [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	b := NewResponseBuilder(c)
	page := dto.ParsePage(c.Query("page"))

	result, err := h.orders.List(c.Request.Context(), page)
	if err != nil {
		if abandon(c, err) {
			return
		}
		b.ErrorWithMessage(http.StatusUnprocessableEntity, b.T(i18n.ErrKeyOrdersList)+" "+err.Error(), err)
		return
	}
	b.SuccessOK(i18n.SuccessKeyOrdersListed, result)
}

// CreateOrder handles POST /api/pedidos.
//
// @Summary      Create an order
// @Description  Validates the order and writes it with its lines in one transaction. The total is the sum of cantidad × precio over the lines. The response carries the order with its final total, without the lines. Supports idempotency via the Idempotency-Key header.
// @Tags         Pedidos
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the stored response of a repeated request"
// @Param        request body dto.CreateOrderRequest true "Order and its lines"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Pedido creado"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Validation or creation failure"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/pedidos [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	b := NewResponseBuilder(c)

	var req dto.CreateOrderRequest
	if err := DecodeJSON(c, &req, validation.CreateOrderRules); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			b.ValidationFailed(errs)
			return
		}
		b.Error(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		if abandon(c, err) {
			return
		}
		if errs, ok := validation.AsErrors(err); ok {
			b.ValidationFailed(errs)
			return
		}

		middleware.AuditLogError(h.logs, c, middleware.ActionCreateOrder, "order creation failed", err, map[string]interface{}{
			"client_id": req.ClientID.Uint(),
			"lines":     len(req.Detalle),
		})
		if errors.Is(err, repository.ErrOrderInsert) {
			b.Error(http.StatusUnprocessableEntity, i18n.ErrKeyOrderCreate, err)
			return
		}
		b.ErrorWithMessage(http.StatusUnprocessableEntity, err.Error(), err)
		return
	}

	middleware.AuditLog(h.logs, c, middleware.ActionCreateOrder, "order created", map[string]interface{}{
		"order_id":  order.ID,
		"client_id": order.ClientID,
		"lines":     len(req.Detalle),
		"total":     order.Total.String(),
	})
	b.SuccessOK(i18n.SuccessKeyOrderCreated, order)
}

// FilterOrders handles GET /api/pedidos/filtrar.
//
// @Summary      Filter a client's orders
// @Description  Returns one page of the client's orders. When producto_id and/or categoria_id are given, only orders with a line whose product matches all of them are kept. Matching orders carry all their lines.
// @Tags         Pedidos
// @Produce      json
// @Param        client_id query int true "Client id"
// @Param        categoria_id query int false "Category id"
// @Param        producto_id query int false "Product id"
// @Param        page query int false "Page number, defaults to 1"
// @Success      200 {object} dto.SuccessResponse{data=dto.Paginated[model.Order]} "Pedidos filtrados"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Validation or query failure"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/pedidos/filtrar [get]
func (h *OrderHandler) FilterOrders(c *gin.Context) {
	b := NewResponseBuilder(c)

	var req dto.FilterOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		b.Error(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidRequest, err)
		return
	}
	page := dto.ParsePage(c.Query("page"))

	result, err := h.orders.Filter(c.Request.Context(), &req, page)
	if err != nil {
		if abandon(c, err) {
			return
		}
		if errs, ok := validation.AsErrors(err); ok {
			b.ValidationFailed(errs)
			return
		}
		b.ErrorWithMessage(http.StatusUnprocessableEntity, b.T(i18n.ErrKeyOrdersFilter)+": "+err.Error(), err)
		return
	}

	middleware.AuditLog(h.logs, c, middleware.ActionFilterOrders, "orders filtered", map[string]interface{}{
		"client_id":    req.ClientID,
		"categoria_id": req.CategoriaID,
		"producto_id":  req.ProductoID,
		"total":        result.Total,
	})
	b.SuccessOK(i18n.SuccessKeyOrdersFiltered, result)
}

// abandon leaves the response to the Timeout middleware when the request
// deadline expired.
func abandon(c *gin.Context, err error) bool {
	if !errors.Is(err, context.DeadlineExceeded) || c.Request.Context().Err() == nil {
		return false
	}
	_ = c.Error(err)
	return true
}
