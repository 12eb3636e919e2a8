// Package service contains the business logic for the order service.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/metrics"
	"github.com/guttosm/order-service/internal/repository"
	"github.com/guttosm/order-service/internal/validation"
	"github.com/rs/zerolog/log"
)

// OrderService provides order listing, creation and filtering.
//
// Create and Filter return validation.Errors when the request breaks a rule,
// including references to clients, categories or products that do not exist.
// Any other error comes from the store.
type OrderService interface {
	List(ctx context.Context, page dto.Page) (*dto.Paginated[model.Order], error)
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error)
	Filter(ctx context.Context, req *dto.FilterOrdersRequest, page dto.Page) (*dto.Paginated[model.Order], error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	orders    repository.OrderRepositoryInterface
	refs      repository.ReferenceRepositoryInterface
	validator *validation.Validator
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepositoryInterface, refs repository.ReferenceRepositoryInterface) OrderService {
	return &OrderServiceImpl{
		orders:    orders,
		refs:      refs,
		validator: validation.Default(),
	}
}

// List returns one page of orders with their lines, products, categories and client.
func (s *OrderServiceImpl) List(ctx context.Context, page dto.Page) (result *dto.Paginated[model.Order], err error) {
	defer observe(metrics.OperationList, time.Now(), &err)

	orders, total, err := s.orders.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(orders, total, page), nil
}

// Create validates req and writes the order, its lines and its total in one
// transaction. The returned order carries the final total but not its lines.
func (s *OrderServiceImpl) Create(ctx context.Context, req *dto.CreateOrderRequest) (created *model.Order, err error) {
	defer observe(metrics.OperationCreate, time.Now(), &err)

	if req == nil {
		req = &dto.CreateOrderRequest{}
	}
	if err := s.validateCreate(ctx, req); err != nil {
		return nil, err
	}

	fecha, err := model.ParseDate(req.FechaPedido)
	if err != nil {
		return nil, err
	}

	order := model.Order{
		FechaPedido: fecha,
		ClientID:    req.ClientID.Uint(),
	}
	err = s.orders.Transaction(ctx, func(tx repository.OrderTx) error {
		if err := tx.InsertOrder(ctx, &order); err != nil {
			return err
		}

		lines := make([]model.OrderLine, 0, len(req.Detalle))
		for i, item := range req.Detalle {
			line := model.NewOrderLine(item.ProductID.Uint(), item.Cantidad.Decimal(), item.Precio.Decimal())
			line.PedidoID = order.ID
			if err := tx.InsertLine(ctx, &line); err != nil {
				return fmt.Errorf("detalle.%d: %w", i, err)
			}
			lines = append(lines, line)
		}

		total := model.SumSubtotals(lines)
		if err := tx.UpdateTotal(ctx, order.ID, total); err != nil {
			return err
		}
		order.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOrderLines(len(req.Detalle))
	log.Debug().
		Uint("order_id", order.ID).
		Uint("client_id", order.ClientID).
		Int("lines", len(req.Detalle)).
		Str("total", order.Total.String()).
		Msg("order created")
	return &order, nil
}

func (s *OrderServiceImpl) validateCreate(ctx context.Context, req *dto.CreateOrderRequest) error {
	rules := validation.CreateOrderRules
	errs := s.validator.Struct(req, rules)

	if !errs.Has("client_id") {
		ok, err := s.refs.ClientExists(ctx, req.ClientID.Uint())
		if err != nil {
			return err
		}
		if !ok {
			rules.Exists(errs, "client_id")
		}
	}

	var (
		ids    []uint
		fields []string
	)
	for i, item := range req.Detalle {
		field := fmt.Sprintf("detalle.%d.product_id", i)
		if errs.Has(field) {
			continue
		}
		ids = append(ids, item.ProductID.Uint())
		fields = append(fields, field)
	}
	if len(ids) > 0 {
		found, err := s.refs.ExistingProductIDs(ctx, ids)
		if err != nil {
			return err
		}
		for i, id := range ids {
			if id == 0 || !found[id] {
				rules.Exists(errs, fields[i])
			}
		}
	}

	if !errs.Empty() {
		return errs
	}
	return nil
}

// Filter returns one page of the client's orders, narrowed to orders with a
// line whose product matches the given product and/or category.
func (s *OrderServiceImpl) Filter(ctx context.Context, req *dto.FilterOrdersRequest, page dto.Page) (result *dto.Paginated[model.Order], err error) {
	defer observe(metrics.OperationFilter, time.Now(), &err)

	if req == nil {
		req = &dto.FilterOrdersRequest{}
	}
	req.ClientID = strings.TrimSpace(req.ClientID)
	req.CategoriaID = strings.TrimSpace(req.CategoriaID)
	req.ProductoID = strings.TrimSpace(req.ProductoID)

	filter, err := s.validateFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	orders, total, err := s.orders.Filter(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginated(orders, total, page), nil
}

func (s *OrderServiceImpl) validateFilter(ctx context.Context, req *dto.FilterOrdersRequest) (repository.OrderFilter, error) {
	rules := validation.FilterOrdersRules
	errs := s.validator.Struct(req, rules)
	filter := repository.OrderFilter{ClientID: req.Client().Uint()}

	if !errs.Has("client_id") {
		ok, err := s.refs.ClientExists(ctx, filter.ClientID)
		if err != nil {
			return filter, err
		}
		if !ok {
			rules.Exists(errs, "client_id")
		}
	}

	if req.CategoriaID != "" {
		id := req.Categoria().Uint()
		ok, err := s.refs.CategoryExists(ctx, id)
		if err != nil {
			return filter, err
		}
		if !ok {
			rules.Exists(errs, "categoria_id")
		}
		filter.CategoryID = &id
	}

	if req.ProductoID != "" {
		id := req.Producto().Uint()
		found, err := s.refs.ExistingProductIDs(ctx, []uint{id})
		if err != nil {
			return filter, err
		}
		if id == 0 || !found[id] {
			rules.Exists(errs, "producto_id")
		}
		filter.ProductID = &id
	}

	if !errs.Empty() {
		return filter, errs
	}
	return filter, nil
}

// observe records the outcome of one operation. err points at the caller's named result.
func observe(operation string, start time.Time, err *error) {
	status := metrics.StatusSuccess
	switch {
	case *err == nil:
	case validation.IsValidationError(*err):
		status = metrics.StatusInvalid
	default:
		status = metrics.StatusError
	}
	metrics.RecordOrderOperation(operation, status, time.Since(start))
}
