//go:build !integration

package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/domain/model"
	"github.com/guttosm/order-service/internal/i18n"
	"github.com/guttosm/order-service/internal/mocks"
	"github.com/guttosm/order-service/internal/repository"
	"github.com/guttosm/order-service/internal/service"
	"github.com/guttosm/order-service/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createRequest(t *testing.T, body string) *dto.CreateOrderRequest {
	t.Helper()
	var req dto.CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func decimalEq(want string) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString(want))
	})
}

func newOrderService() (service.OrderService, *mocks.MockOrderRepositoryInterface, *mocks.MockReferenceRepositoryInterface) {
	orders := new(mocks.MockOrderRepositoryInterface)
	refs := new(mocks.MockReferenceRepositoryInterface)
	return service.NewOrderService(orders, refs), orders, refs
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps the page", func(t *testing.T) {
		svc, orders, _ := newOrderService()
		rows := []model.Order{{ID: 11}, {ID: 12}}
		orders.On("List", ctx, dto.Page(2)).Return(rows, int64(12), nil)

		page, err := svc.List(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, 2, page.LastPage)
		assert.Equal(t, int64(12), page.Total)
		require.NotNil(t, page.From)
		assert.Equal(t, 11, *page.From)
		assert.Equal(t, 12, *page.To)
		orders.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		svc, orders, _ := newOrderService()
		orders.On("List", ctx, dto.Page(1)).Return(nil, int64(0), errors.New("connection refused"))

		page, err := svc.List(ctx, 1)
		assert.Nil(t, page)
		assert.EqualError(t, err, "connection refused")
	})
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("writes order, lines and total in one transaction", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		tx := new(mocks.MockOrderTx)

		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		refs.On("ExistingProductIDs", ctx, []uint{3, 4}).Return(map[uint]bool{3: true, 4: true}, nil)
		orders.On("Transaction", ctx, mock.Anything).Return(nil, tx)

		tx.On("InsertOrder", ctx, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*model.Order)
				assert.Equal(t, uint(1), o.ClientID)
				assert.Equal(t, "2024-05-01", o.FechaPedido.String())
				o.ID = 7
			}).Return(nil)
		tx.On("InsertLine", ctx, mock.MatchedBy(func(l *model.OrderLine) bool {
			return l.PedidoID == 7 && l.ProductoID == 3 && l.SubTotal.Equal(decimal.RequireFromString("21"))
		})).Return(nil).Once()
		tx.On("InsertLine", ctx, mock.MatchedBy(func(l *model.OrderLine) bool {
			return l.PedidoID == 7 && l.ProductoID == 4 && l.SubTotal.Equal(decimal.RequireFromString("3.75"))
		})).Return(nil).Once()
		tx.On("UpdateTotal", ctx, uint(7), decimalEq("24.75")).Return(nil)

		order, err := svc.Create(ctx, createRequest(t, `{
			"fecha_pedido": "2024-05-01",
			"client_id": 1,
			"detalle": [
				{"product_id": 3, "cantidad": 2, "precio": "10.50"},
				{"product_id": "4", "cantidad": "1.5", "precio": 2.5}
			]
		}`))
		require.NoError(t, err)
		assert.Equal(t, uint(7), order.ID)
		assert.True(t, order.Total.Equal(decimal.RequireFromString("24.75")), order.Total.String())
		assert.Nil(t, order.Detalles)
		tx.AssertExpectations(t)
		refs.AssertExpectations(t)
	})

	t.Run("fractional cents keep the total equal to the stored subtotals", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		tx := new(mocks.MockOrderTx)

		var stored []model.OrderLine
		var storedTotal decimal.Decimal
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		refs.On("ExistingProductIDs", ctx, []uint{3, 4}).Return(map[uint]bool{3: true, 4: true}, nil)
		orders.On("Transaction", ctx, mock.Anything).Return(nil, tx)
		tx.On("InsertOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Order).ID = 9
		}).Return(nil)
		tx.On("InsertLine", ctx, mock.Anything).Run(func(args mock.Arguments) {
			l := *args.Get(1).(*model.OrderLine)
			l.SubTotal = l.SubTotal.Round(model.MoneyScale)
			stored = append(stored, l)
		}).Return(nil)
		tx.On("UpdateTotal", ctx, uint(9), mock.Anything).Run(func(args mock.Arguments) {
			storedTotal = args.Get(2).(decimal.Decimal).Round(model.MoneyScale)
		}).Return(nil)

		order, err := svc.Create(ctx, createRequest(t, `{
			"fecha_pedido": "2024-05-01",
			"client_id": 1,
			"detalle": [
				{"product_id": 3, "cantidad": 1, "precio": "0.125"},
				{"product_id": 4, "cantidad": 1, "precio": "0.125"}
			]
		}`))
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.True(t, storedTotal.Equal(model.SumSubtotals(stored)),
			"stored total %s, stored subtotals %s", storedTotal, model.SumSubtotals(stored))
		assert.True(t, order.Total.Equal(storedTotal), "returned %s, stored %s", order.Total, storedTotal)
		assert.Equal(t, "0.26", order.Total.StringFixed(model.MoneyScale))
	})

	t.Run("no lines yields a zero total", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		tx := new(mocks.MockOrderTx)

		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		orders.On("Transaction", ctx, mock.Anything).Return(nil, tx)
		tx.On("InsertOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Order).ID = 8
		}).Return(nil)
		tx.On("UpdateTotal", ctx, uint(8), decimalEq("0")).Return(nil)

		order, err := svc.Create(ctx, createRequest(t, `{"fecha_pedido":"2024-05-01 10:30:00","client_id":"1"}`))
		require.NoError(t, err)
		assert.True(t, order.Total.IsZero())
		refs.AssertNotCalled(t, "ExistingProductIDs", mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "InsertLine", mock.Anything, mock.Anything)
	})

	t.Run("rule violations are reported per field before any write", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		refs.On("ExistingProductIDs", ctx, []uint{9}).Return(map[uint]bool{}, nil)

		_, err := svc.Create(ctx, createRequest(t, `{
			"fecha_pedido": "2024-13-45",
			"detalle": [
				{"product_id": 9, "cantidad": "dos", "precio": 1},
				{"cantidad": 1}
			]
		}`))

		errs, ok := validation.AsErrors(err)
		require.True(t, ok, "%v", err)
		assert.Equal(t, validation.Errors{
			"fecha_pedido":         {i18n.ValKeyFechaDate},
			"client_id":            {i18n.ValKeyClientRequired},
			"detalle.0.product_id": {i18n.ValKeyProductExists},
			"detalle.0.cantidad":   {i18n.ValKeyCantidadNumeric},
			"detalle.1.product_id": {i18n.ValKeyProductRequired},
			"detalle.1.precio":     {i18n.ValKeyPrecioRequired},
		}, errs)
		refs.AssertNotCalled(t, "ClientExists", mock.Anything, mock.Anything)
		orders.AssertNotCalled(t, "Transaction", mock.Anything, mock.Anything)
	})

	t.Run("unknown client", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		refs.On("ClientExists", ctx, uint(99)).Return(false, nil)

		_, err := svc.Create(ctx, createRequest(t, `{"fecha_pedido":"2024-05-01","client_id":99,"detalle":[]}`))

		errs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, validation.Errors{"client_id": {i18n.ValKeyClientExists}}, errs)
		orders.AssertNotCalled(t, "Transaction", mock.Anything, mock.Anything)
	})

	t.Run("nil request is validated as empty", func(t *testing.T) {
		svc, _, _ := newOrderService()

		_, err := svc.Create(ctx, nil)

		errs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.True(t, errs.Has("fecha_pedido"))
		assert.True(t, errs.Has("client_id"))
	})

	t.Run("reference lookup failure is not a validation error", func(t *testing.T) {
		svc, _, refs := newOrderService()
		refs.On("ClientExists", ctx, uint(1)).Return(false, errors.New("connection refused"))

		_, err := svc.Create(ctx, createRequest(t, `{"fecha_pedido":"2024-05-01","client_id":1}`))
		assert.EqualError(t, err, "connection refused")
		assert.False(t, validation.IsValidationError(err))
	})

	t.Run("order insert failure", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		tx := new(mocks.MockOrderTx)
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		orders.On("Transaction", ctx, mock.Anything).Return(nil, tx)
		tx.On("InsertOrder", ctx, mock.Anything).Return(repository.ErrOrderInsert)

		order, err := svc.Create(ctx, createRequest(t, `{"fecha_pedido":"2024-05-01","client_id":1}`))
		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrOrderInsert)
		tx.AssertNotCalled(t, "UpdateTotal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("line insert failure aborts and names the line", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		tx := new(mocks.MockOrderTx)
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		refs.On("ExistingProductIDs", ctx, []uint{3, 4}).Return(map[uint]bool{3: true, 4: true}, nil)
		orders.On("Transaction", ctx, mock.Anything).Return(nil, tx)
		tx.On("InsertOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Order).ID = 5
		}).Return(nil)
		tx.On("InsertLine", ctx, mock.MatchedBy(func(l *model.OrderLine) bool { return l.ProductoID == 3 })).Return(nil)
		tx.On("InsertLine", ctx, mock.MatchedBy(func(l *model.OrderLine) bool { return l.ProductoID == 4 })).
			Return(repository.ErrLineInsert)

		order, err := svc.Create(ctx, createRequest(t, `{
			"fecha_pedido": "2024-05-01",
			"client_id": 1,
			"detalle": [
				{"product_id": 3, "cantidad": 1, "precio": 1},
				{"product_id": 4, "cantidad": 1, "precio": 1}
			]
		}`))
		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrLineInsert)
		assert.Contains(t, err.Error(), "detalle.1")
		tx.AssertNotCalled(t, "UpdateTotal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("total update failure", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		tx := new(mocks.MockOrderTx)
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		orders.On("Transaction", ctx, mock.Anything).Return(nil, tx)
		tx.On("InsertOrder", ctx, mock.Anything).Return(nil)
		tx.On("UpdateTotal", ctx, mock.Anything, mock.Anything).Return(repository.ErrTotalUpdate)

		_, err := svc.Create(ctx, createRequest(t, `{"fecha_pedido":"2024-05-01","client_id":1}`))
		assert.ErrorIs(t, err, repository.ErrTotalUpdate)
	})
}

func TestOrderService_Filter(t *testing.T) {
	ctx := context.Background()
	uintPtr := func(v uint) *uint { return &v }

	t.Run("client only", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		orders.On("Filter", ctx, repository.OrderFilter{ClientID: 1}, dto.Page(1)).
			Return([]model.Order{{ID: 1}}, int64(1), nil)

		page, err := svc.Filter(ctx, &dto.FilterOrdersRequest{ClientID: "1", CategoriaID: " ", ProductoID: ""}, 1)
		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
		refs.AssertNotCalled(t, "CategoryExists", mock.Anything, mock.Anything)
		refs.AssertNotCalled(t, "ExistingProductIDs", mock.Anything, mock.Anything)
	})

	t.Run("client, category and product", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		refs.On("CategoryExists", ctx, uint(2)).Return(true, nil)
		refs.On("ExistingProductIDs", ctx, []uint{3}).Return(map[uint]bool{3: true}, nil)
		want := repository.OrderFilter{ClientID: 1, CategoryID: uintPtr(2), ProductID: uintPtr(3)}
		orders.On("Filter", ctx, want, dto.Page(2)).Return([]model.Order{}, int64(0), nil)

		page, err := svc.Filter(ctx, &dto.FilterOrdersRequest{ClientID: "1", CategoriaID: "2", ProductoID: "3"}, 2)
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Nil(t, page.From)
		orders.AssertExpectations(t)
	})

	t.Run("missing client", func(t *testing.T) {
		svc, orders, _ := newOrderService()

		_, err := svc.Filter(ctx, &dto.FilterOrdersRequest{}, 1)

		errs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, validation.Errors{"client_id": {i18n.ValKeyFilterClientRequired}}, errs)
		orders.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown references", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		refs.On("ClientExists", ctx, uint(0)).Return(false, nil)
		refs.On("CategoryExists", ctx, uint(8)).Return(false, nil)
		refs.On("ExistingProductIDs", ctx, []uint{9}).Return(map[uint]bool{}, nil)

		_, err := svc.Filter(ctx, &dto.FilterOrdersRequest{ClientID: "abc", CategoriaID: "8", ProductoID: "9"}, 1)

		errs, ok := validation.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, validation.Errors{
			"client_id":    {i18n.ValKeyClientExists},
			"categoria_id": {i18n.ValKeyFilterCategoriaExists},
			"producto_id":  {i18n.ValKeyFilterProductoExists},
		}, errs)
		orders.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store error", func(t *testing.T) {
		svc, orders, refs := newOrderService()
		refs.On("ClientExists", ctx, uint(1)).Return(true, nil)
		orders.On("Filter", ctx, mock.Anything, dto.Page(1)).Return(nil, int64(0), errors.New("timeout"))

		_, err := svc.Filter(ctx, &dto.FilterOrdersRequest{ClientID: "1"}, 1)
		assert.EqualError(t, err, "timeout")
	})
}
