package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockCommandHandler[C any] struct {
	mock.Mock
}

func (m *mockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type mockQueryHandler[Q any, R any] struct {
	mock.Mock
}

func (m *mockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	var resp R
	if v := args.Get(0); v != nil {
		resp = v.(R)
	}
	return resp, args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite

	echo *echo.Echo

	createOrder         *mockCommandHandler[commands.CreateOrderCommand]
	advanceOrderStatus  *mockCommandHandler[commands.AdvanceOrderStatusCommand]
	cancelOrder         *mockCommandHandler[commands.CancelOrderCommand]
	createOverride      *mockCommandHandler[commands.CreateOverrideCommand]
	updateOverride      *mockCommandHandler[commands.UpdateOverrideCommand]
	deleteOverride      *mockCommandHandler[commands.DeleteOverrideCommand]
	changeOperationCost *mockCommandHandler[commands.ChangeOperationCostCommand]

	quotePrice            *mockQueryHandler[queries.QuotePriceQuery, queries.QuotePriceQueryResponse]
	getOrder              *mockQueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	getOpenOrders         *mockQueryHandler[queries.GetOpenOrdersQuery, []queries.GetOpenOrdersQueryResponse]
	listCustomerOverrides *mockQueryHandler[queries.ListCustomerOverridesQuery, []queries.ListCustomerOverridesQueryResponse]

	storeID    kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID
	orderID    kernel.UUID
	createdAt  time.Time
}

func (s *ServerTestSuite) SetupTest() {
	s.createOrder = new(mockCommandHandler[commands.CreateOrderCommand])
	s.advanceOrderStatus = new(mockCommandHandler[commands.AdvanceOrderStatusCommand])
	s.cancelOrder = new(mockCommandHandler[commands.CancelOrderCommand])
	s.createOverride = new(mockCommandHandler[commands.CreateOverrideCommand])
	s.updateOverride = new(mockCommandHandler[commands.UpdateOverrideCommand])
	s.deleteOverride = new(mockCommandHandler[commands.DeleteOverrideCommand])
	s.changeOperationCost = new(mockCommandHandler[commands.ChangeOperationCostCommand])
	s.quotePrice = new(mockQueryHandler[queries.QuotePriceQuery, queries.QuotePriceQueryResponse])
	s.getOrder = new(mockQueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse])
	s.getOpenOrders = new(mockQueryHandler[queries.GetOpenOrdersQuery, []queries.GetOpenOrdersQueryResponse])
	s.listCustomerOverrides = new(
		mockQueryHandler[queries.ListCustomerOverridesQuery, []queries.ListCustomerOverridesQueryResponse],
	)

	s.storeID = kernel.NewUUID()
	s.customerID = kernel.NewUUID()
	s.productID = kernel.NewUUID()
	s.orderID = kernel.NewUUID()
	s.createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	server := NewServer(Handlers{
		CreateOrder:           s.createOrder,
		AdvanceOrderStatus:    s.advanceOrderStatus,
		CancelOrder:           s.cancelOrder,
		CreateOverride:        s.createOverride,
		UpdateOverride:        s.updateOverride,
		DeleteOverride:        s.deleteOverride,
		ChangeOperationCost:   s.changeOperationCost,
		QuotePrice:            s.quotePrice,
		GetOrder:              s.getOrder,
		GetOpenOrders:         s.getOpenOrders,
		ListCustomerOverrides: s.listCustomerOverrides,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	swagger, err := servers.GetSwagger()
	s.Require().NoError(err)
	openapiValidator, err := OpenAPIValidator(swagger)
	s.Require().NoError(err)

	s.echo = echo.New()
	s.echo.Validator = NewRequestValidator()
	s.echo.Use(openapiValidator)
	servers.RegisterHandlers(s.echo, server)
}

func (s *ServerTestSuite) TearDownTest() {
	s.createOrder.AssertExpectations(s.T())
	s.advanceOrderStatus.AssertExpectations(s.T())
	s.cancelOrder.AssertExpectations(s.T())
	s.createOverride.AssertExpectations(s.T())
	s.updateOverride.AssertExpectations(s.T())
	s.deleteOverride.AssertExpectations(s.T())
	s.changeOperationCost.AssertExpectations(s.T())
	s.quotePrice.AssertExpectations(s.T())
	s.getOrder.AssertExpectations(s.T())
	s.getOpenOrders.AssertExpectations(s.T())
	s.listCustomerOverrides.AssertExpectations(s.T())
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ServerTestSuite) orderView(status order.Status) queries.GetOrderQueryResponse {
	locked := s.createdAt.Add(time.Minute)
	return queries.GetOrderQueryResponse{
		ID:         s.orderID,
		StoreID:    s.storeID,
		CustomerID: s.customerID,
		Status:     status,
		Items: []queries.OrderItemView{{
			ProductID: s.productID,
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("108"),
			Subtotal:  decimal.RequireFromString("216"),
		}},
		Total:          decimal.RequireFromString("216"),
		CreatedAt:      s.createdAt,
		PricesLockedAt: &locked,
		StatusHistory: []queries.StatusChangeView{
			{Status: order.Requested, At: s.createdAt},
			{Status: status, At: locked},
		},
		Precision: 2,
	}
}

func (s *ServerTestSuite) Test_QuotePrice_ReturnsBreakdown() {
	s.quotePrice.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.QuotePriceQuery) bool {
		return q.ProductID().IsEqual(s.productID)
	})).Return(queries.QuotePriceQueryResponse{
		StoreID:    s.storeID,
		CustomerID: s.customerID,
		ProductID:  s.productID,
		UnitPrice:  decimal.RequireFromString("108"),
		Breakdown: pricing.Breakdown{
			BasePrice:            decimal.RequireFromString("100"),
			OperationCostPercent: decimal.RequireFromString("20"),
			MarkupAmount:         decimal.RequireFromString("20"),
			MarkedUpPrice:        decimal.RequireFromString("120"),
			OverrideKind:         pricing.RuleDiscountPercent,
			OverrideValue:        decimal.RequireFromString("10"),
			OverrideApplied:      true,
			FinalPrice:           decimal.RequireFromString("108"),
		},
		Precision: 2,
	}, nil)

	rec := s.do(http.MethodGet,
		"/api/v1/stores/"+s.storeID.String()+"/customers/"+s.customerID.String()+"/products/"+s.productID.String()+"/price",
		"")

	s.Require().Equal(http.StatusOK, rec.Code)
	var quote servers.PriceQuote
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &quote))
	s.Equal("108.00", quote.UnitPrice)
	s.Equal("120.00", quote.Breakdown.MarkedUpPrice)
	s.Equal(servers.DiscountPercent, quote.Breakdown.OverrideKind)
	s.Require().NotNil(quote.Breakdown.OverrideValue)
	s.Equal("10", *quote.Breakdown.OverrideValue)
}

func (s *ServerTestSuite) Test_QuotePrice_NotFound() {
	s.quotePrice.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("productId", s.productID))

	rec := s.do(http.MethodGet,
		"/api/v1/stores/"+s.storeID.String()+"/customers/"+s.customerID.String()+"/products/"+s.productID.String()+"/price",
		"")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(int32(http.StatusNotFound), s.decodeError(rec).Code)
}

func (s *ServerTestSuite) Test_QuotePrice_MalformedIDIsRejected() {
	rec := s.do(http.MethodGet,
		"/api/v1/stores/not-a-uuid/customers/"+s.customerID.String()+"/products/"+s.productID.String()+"/price",
		"")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) Test_CreateOrder_ReturnsCreatedOrder() {
	body := `{"orderId":"` + s.orderID.String() + `","storeId":"` + s.storeID.String() +
		`","customerId":"` + s.customerID.String() + `","items":[{"productId":"` + s.productID.String() + `","quantity":2}]}`

	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.OrderID().IsEqual(s.orderID) && len(cmd.Lines()) == 1 && cmd.Lines()[0].Quantity == 2
	})).Return(nil)
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(s.orderView(order.Requested), nil)

	rec := s.do(http.MethodPost, "/api/v1/orders", body)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var created servers.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal(s.orderID.Bytes(), created.Id)
	s.Equal("216.00", created.Total)
	s.Equal("108.00", created.Items[0].UnitPrice)
}

func (s *ServerTestSuite) Test_CreateOrder_EmptyItemsIsRejected() {
	body := `{"storeId":"` + s.storeID.String() + `","customerId":"` + s.customerID.String() + `","items":[]}`

	rec := s.do(http.MethodPost, "/api/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) Test_AdvanceOrderStatus_IllegalTransitionIsConflict() {
	s.advanceOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderStatusCommand) bool {
		return cmd.Target() == order.Shipped
	})).Return(&order.IllegalTransitionError{From: order.Requested, To: order.Shipped})

	rec := s.do(http.MethodPost, "/api/v1/orders/"+s.orderID.String()+"/status", `{"status":"SHIPPED"}`)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) Test_AdvanceOrderStatus_ReturnsOrder() {
	s.advanceOrderStatus.On("Handle", mock.Anything, mock.Anything).Return(nil)
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(s.orderView(order.Pending), nil)

	rec := s.do(http.MethodPost, "/api/v1/orders/"+s.orderID.String()+"/status", `{"status":"PENDING"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	var advanced servers.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &advanced))
	s.Equal(servers.PENDING, advanced.Status)
	s.NotNil(advanced.PricesLockedAt)
	s.Len(advanced.StatusHistory, 2)
}

func (s *ServerTestSuite) Test_AdvanceOrderStatus_UnknownStatusIsRejected() {
	rec := s.do(http.MethodPost, "/api/v1/orders/"+s.orderID.String()+"/status", `{"status":"LOST"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) Test_CancelOrder_ConcurrencyConflict() {
	s.cancelOrder.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewConcurrencyConflictError("orderId", s.orderID, 3))

	rec := s.do(http.MethodPost, "/api/v1/orders/"+s.orderID.String()+"/cancel", "")

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) Test_GetOpenOrders() {
	s.getOpenOrders.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetOpenOrdersQueryResponse{{
		ID:         s.orderID,
		CustomerID: s.customerID,
		Status:     order.Processing,
		Total:      decimal.RequireFromString("12.5"),
		CreatedAt:  s.createdAt,
		Precision:  2,
	}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/stores/"+s.storeID.String()+"/orders/open", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var open []servers.OrderSummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &open))
	s.Require().Len(open, 1)
	s.Equal(servers.PROCESSING, open[0].Status)
	s.Equal("12.50", open[0].Total)
}

func (s *ServerTestSuite) Test_ChangeOperationCost() {
	s.changeOperationCost.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOperationCostCommand) bool {
		return cmd.Percent().Equal(decimal.RequireFromString("15.5"))
	})).Return(nil)

	rec := s.do(http.MethodPut, "/api/v1/stores/"+s.storeID.String()+"/operation-cost",
		`{"operationCostPercent":"15.5"}`)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) Test_CreateOverride_DuplicateIsConflict() {
	s.createOverride.On("Handle", mock.Anything, mock.Anything).
		Return(pricing.NewDuplicateOverrideError(s.customerID, s.productID))

	rec := s.do(http.MethodPost, "/api/v1/customers/"+s.customerID.String()+"/overrides",
		`{"productId":"`+s.productID.String()+`","discountPercent":"10"}`)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerTestSuite) Test_CreateOverride_BothRulesAreRejected() {
	rec := s.do(http.MethodPost, "/api/v1/customers/"+s.customerID.String()+"/overrides",
		`{"productId":"`+s.productID.String()+`","discountPercent":"10","fixedPrice":"50"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) Test_UpdateOverride() {
	s.updateOverride.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOverrideCommand) bool {
		return pricing.KindOf(cmd.Rule()) == pricing.RuleFixedPrice
	})).Return(nil)

	rec := s.do(http.MethodPut,
		"/api/v1/customers/"+s.customerID.String()+"/overrides/"+s.productID.String(),
		`{"fixedPrice":"80"}`)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) Test_DeleteOverride_Missing() {
	s.deleteOverride.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("override", s.productID))

	rec := s.do(http.MethodDelete,
		"/api/v1/customers/"+s.customerID.String()+"/overrides/"+s.productID.String(), "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) Test_ListCustomerOverrides() {
	s.listCustomerOverrides.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.ListCustomerOverridesQueryResponse{{
			ProductID: s.productID,
			Kind:      pricing.RuleFixedPrice,
			Value:     decimal.RequireFromString("80"),
			UpdatedAt: s.createdAt,
		}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/customers/"+s.customerID.String()+"/overrides", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var overrides []servers.Override
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &overrides))
	s.Require().Len(overrides, 1)
	s.Equal(servers.FixedPrice, overrides[0].Kind)
	s.Equal("80", overrides[0].Value)
}

func (s *ServerTestSuite) Test_InternalErrorsAreHidden() {
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset by peer"))

	rec := s.do(http.MethodGet, "/api/v1/orders/"+s.orderID.String(), "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(http.StatusText(http.StatusInternalServerError), s.decodeError(rec).Message)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestStatusFor(t *testing.T) {
	id := kernel.NewUUID()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", id), http.StatusNotFound},
		{"duplicate override", pricing.NewDuplicateOverrideError(id, id), http.StatusConflict},
		{"illegal transition", &order.IllegalTransitionError{From: order.Completed, To: order.Cancelled}, http.StatusConflict},
		{"empty order", order.ErrEmptyOrder, http.StatusBadRequest},
		{"invalid pricing input", pricing.ErrInvalidPricingInput, http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestRuleFromBody(t *testing.T) {
	fixed := "49.90"
	rule, err := ruleFromBody(&fixed, nil)
	require.NoError(t, err)
	assert.Equal(t, pricing.RuleFixedPrice, pricing.KindOf(rule))

	negative := "-5"
	_, err = ruleFromBody(nil, &negative)
	assert.ErrorIs(t, err, pricing.ErrInvalidPricingInput)

	_, err = ruleFromBody(nil, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
