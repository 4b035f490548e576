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

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery lists a store's orders that are neither Completed nor
// Cancelled, oldest first.
type GetOpenOrdersQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOpenOrdersQuery(storeID kernel.UUID) (GetOpenOrdersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetOpenOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	return GetOpenOrdersQuery{storeID: storeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

func (q GetOpenOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetOpenOrdersQueryResponse summarises one open order.
type GetOpenOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
	Total      decimal.Decimal
	CreatedAt  time.Time
	Precision  int32
}
