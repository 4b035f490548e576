package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
)

// CartLine is one requested product with the customer's override for it, if any.
// Override is nil when the customer has no override for the product.
type CartLine struct {
	Product  *catalog.Product
	Quantity int
	Override pricing.Rule
}

// OrderPlacer is a domain service that turns a customer's cart into a new order.
//
// Key responsibilities:
//   - Checking the customer and every product belong to the store
//   - Resolving each line's unit price with the store markup and the override
//   - Snapshotting the resolved prices into the order's line items
//
// Business rules:
//   - Every line is priced before the order exists; one bad line fails the whole cart
//   - The created order is Requested and its unit prices never change afterwards
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	o, err := placer.Place(kernel.NewUUID(), store, customer, []services.CartLine{
//	    {Product: rice, Quantity: 2, Override: discount},
//	    {Product: flour, Quantity: 1},
//	}, time.Now())
//	if errors.Is(err, order.ErrEmptyOrder) {
//	    // nothing was requested
//	}
type OrderPlacer struct{}

// NewOrderPlacer creates a new OrderPlacer instance.
func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place prices every cart line for the customer and creates a Requested order.
//
// Returns:
//   - *order.Order: the new order, not yet persisted
//   - error: ErrEmptyOrder for an empty cart, ErrInvalidPricingInput or
//     ErrInvalidQuantity for bad lines, ErrValueIsInvalid for foreign
//     customers or products
func (p OrderPlacer) Place(
	id kernel.UUID,
	store *catalog.Store,
	customer *catalog.Customer,
	lines []CartLine,
	now time.Time,
) (*order.Order, error) {
	if err := errors.Join(store.Validate(), customer.Validate()); err != nil {
		return nil, err
	}

	if !customer.BelongsTo(store.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"customerId",
			fmt.Errorf("customer %s is not registered with store %s", customer.ID(), store.ID()),
		)
	}

	if len(lines) == 0 {
		return nil, order.ErrEmptyOrder
	}

	items := make([]order.LineItem, 0, len(lines))
	for i, line := range lines {
		item, err := p.priceLine(store, line)
		if err != nil {
			return nil, fmt.Errorf("cart line %d: %w", i, err)
		}
		items = append(items, item)
	}

	return order.NewOrder(id, store.ID(), customer.ID(), items, now)
}

func (p OrderPlacer) priceLine(store *catalog.Store, line CartLine) (order.LineItem, error) {
	if line.Quantity <= 0 {
		return order.LineItem{}, fmt.Errorf("%w: %w", order.ErrInvalidQuantity,
			errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, nil))
	}

	quote, err := store.Quote(line.Product, line.Override)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(line.Product.ID(), line.Quantity, quote.UnitPrice)
}
