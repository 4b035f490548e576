package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and status history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is a line item with its locked unit price.
type OrderItemView struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// StatusChangeView is one entry of an order's status history.
type StatusChangeView struct {
	Status order.Status
	At     time.Time
}

// GetOrderQueryResponse is the full order record.
//
// Example:
//
//	resp, _ := handler.Handle(ctx, query)
//	fmt.Printf("%s: %s, total %s\n", resp.ID, resp.Status, resp.Total.StringFixed(2))
//	for _, change := range resp.StatusHistory {
//	    fmt.Printf("  %s at %s\n", change.Status, change.At.Format(time.RFC3339))
//	}
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	StoreID        kernel.UUID
	CustomerID     kernel.UUID
	Status         order.Status
	Items          []OrderItemView
	Total          decimal.Decimal
	CreatedAt      time.Time
	PricesLockedAt *time.Time
	StatusHistory  []StatusChangeView

	// Precision is the store's currency precision, for formatting amounts.
	Precision int32
}
