package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - prices the cart and creates a
// REQUESTED order. The order id is generated when the client sends none.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	if body.OrderId != nil {
		id, err := toKernelID("orderId", *body.OrderId)
		if err != nil {
			return s.fail(ctx, err)
		}
		orderID = id
	}
	storeID, err := toKernelID("storeId", body.StoreId)
	if err != nil {
		return s.fail(ctx, err)
	}
	customerID, err := toKernelID("customerId", body.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := toKernelID("productId", item.ProductId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, storeID, customerID, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.AdvanceOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(id, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toOrder(o))
}
