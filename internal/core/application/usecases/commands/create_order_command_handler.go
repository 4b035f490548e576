package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// CreateOrderCommandHandler prices a cart for a customer and stores the new
// Requested order. The store markup and each product's override are read in
// the same transaction the order is written in, so the locked unit prices are
// the ones in effect at creation.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewCreateOrderCommand(orderID, storeID, customerID, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	placer     services.OrderPlacer
	now        Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory, now Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
		now:        now,
	}
}

// Handle loads the store, customer, products and overrides, prices the cart
// and persists the order. Nothing is written when any line fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	overrideRepo := uow.OverrideRepository()

	cart := make([]services.CartLine, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product, productErr := productRepo.Get(ctx, line.ProductID)
		if productErr != nil {
			return productErr
		}

		override, overrideErr := overrideRepo.Get(ctx, cmd.CustomerID(), line.ProductID)
		if overrideErr != nil {
			return overrideErr
		}

		cartLine := services.CartLine{Product: product, Quantity: line.Quantity}
		if override != nil {
			cartLine.Override = override.Rule()
		}
		cart = append(cart, cartLine)
	}

	newOrder, err := h.placer.Place(cmd.OrderID(), store, customer, cart, h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
