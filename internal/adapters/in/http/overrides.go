package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListCustomerOverrides handles GET /api/v1/customers/{customerId}/overrides.
func (s *Server) ListCustomerOverrides(ctx echo.Context, customerID servers.CustomerId) error {
	customer, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListCustomerOverridesQuery(customer)
	if err != nil {
		return s.fail(ctx, err)
	}

	overrides, err := s.handlers.ListCustomerOverrides.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Override, len(overrides))
	for i, o := range overrides {
		response[i] = toOverride(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOverride handles POST /api/v1/customers/{customerId}/overrides.
func (s *Server) CreateOverride(ctx echo.Context, customerID servers.CustomerId) error {
	var body servers.CreateOverrideJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	customer, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	product, err := toKernelID("productId", body.ProductId)
	if err != nil {
		return s.fail(ctx, err)
	}
	rule, err := ruleFromBody(body.FixedPrice, body.DiscountPercent)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOverrideCommand(customer, product, rule)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOverride.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateOverride handles PUT /api/v1/customers/{customerId}/overrides/{productId}.
func (s *Server) UpdateOverride(ctx echo.Context, customerID servers.CustomerId, productID servers.ProductId) error {
	var body servers.UpdateOverrideJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
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
	rule, err := ruleFromBody(body.FixedPrice, body.DiscountPercent)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOverrideCommand(customer, product, rule)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateOverride.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOverride handles DELETE /api/v1/customers/{customerId}/overrides/{productId}.
func (s *Server) DeleteOverride(ctx echo.Context, customerID servers.CustomerId, productID servers.ProductId) error {
	customer, err := toKernelID("customerId", customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	product, err := toKernelID("productId", productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOverrideCommand(customer, product)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOverride.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

var _ servers.ServerInterface = (*Server)(nil)
