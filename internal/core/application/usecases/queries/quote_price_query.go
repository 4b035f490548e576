package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery asks for the price a customer would pay for one unit of a
// product right now. It is a browsing price: nothing is locked.
//
// Example:
//
//	query, err := NewQuotePriceQuery(storeID, customerID, productID)
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.UnitPrice.StringFixed(2))
type QuotePriceQuery struct {
	storeID    kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewQuotePriceQuery(storeID, customerID, productID kernel.UUID) (QuotePriceQuery, error) {
	var problems []error
	if err := storeID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("storeId", err))
	}
	if err := customerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("productId", err))
	}
	if err := errors.Join(problems...); err != nil {
		return QuotePriceQuery{}, err
	}

	return QuotePriceQuery{
		storeID:    storeID,
		customerID: customerID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

func (q QuotePriceQuery) StoreID() kernel.UUID {
	return q.storeID
}

func (q QuotePriceQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q QuotePriceQuery) ProductID() kernel.UUID {
	return q.productID
}

// QuotePriceQueryResponse is the effective unit price and how it was derived.
type QuotePriceQueryResponse struct {
	StoreID    kernel.UUID
	CustomerID kernel.UUID
	ProductID  kernel.UUID
	UnitPrice  decimal.Decimal
	Breakdown  pricing.Breakdown
	Precision  int32
}
