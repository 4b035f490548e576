package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity is returned for line items whose quantity is not positive.
	ErrInvalidQuantity = errors.New("invalid quantity")

	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one product on an order with its locked unit price. The price is
// a snapshot taken when the order was created; it is not a live reference to
// the catalog.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item. Quantity must be positive and the unit
// price non-negative.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	var problems []error
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("productId", err))
	}
	if quantity <= 0 {
		problems = append(problems, fmt.Errorf("%w: %w", ErrInvalidQuantity,
			errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)))
	}
	if unitPrice.IsNegative() {
		problems = append(problems, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice.String(), 0, nil))
	}
	if err := errors.Join(problems...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) ProductID() kernel.UUID {
	return l.productID
}

func (l LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the locked unit price.
func (l LineItem) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal is quantity × locked unit price.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
