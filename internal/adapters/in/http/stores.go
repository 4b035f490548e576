package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// QuotePrice handles GET /api/v1/stores/{storeId}/customers/{customerId}/products/{productId}/price.
func (s *Server) QuotePrice(
	ctx echo.Context,
	storeID servers.StoreId,
	customerID servers.CustomerId,
	productID servers.ProductId,
) error {
	store, err := toKernelID("storeId", storeID)
	if err != nil {
		return s.fail(ctx, err)
	}
	customer, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	product, err := toKernelID("productId", productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewQuotePriceQuery(store, customer, product)
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.handlers.QuotePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPriceQuote(quote))
}

// ChangeOperationCost handles PUT /api/v1/stores/{storeId}/operation-cost.
func (s *Server) ChangeOperationCost(ctx echo.Context, storeID servers.StoreId) error {
	var body servers.ChangeOperationCostJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	store, err := toKernelID("storeId", storeID)
	if err != nil {
		return s.fail(ctx, err)
	}
	percent, err := parseDecimal("operationCostPercent", body.OperationCostPercent)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOperationCostCommand(store, percent)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeOperationCost.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenOrders handles GET /api/v1/stores/{storeId}/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context, storeID servers.StoreId) error {
	store, err := toKernelID("storeId", storeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOpenOrdersQuery(store)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.GetOpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}

	return ctx.JSON(http.StatusOK, response)
}
