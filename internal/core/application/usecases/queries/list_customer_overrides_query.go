package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCustomerOverridesQueryIsNotConstructed = errors.New(
	"ListCustomerOverridesQuery must be created via NewListCustomerOverridesQuery constructor",
)

// ListCustomerOverridesQuery lists every price override of a customer.
type ListCustomerOverridesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCustomerOverridesQuery(customerID kernel.UUID) (ListCustomerOverridesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOverridesQuery{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	return ListCustomerOverridesQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOverridesQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOverridesQueryIsNotConstructed)
}

func (q ListCustomerOverridesQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ListCustomerOverridesQueryResponse is one override: the product it applies
// to, the rule kind and its value (fixed price or discount percentage).
type ListCustomerOverridesQueryResponse struct {
	ProductID kernel.UUID
	Kind      pricing.RuleKind
	Value     decimal.Decimal
	UpdatedAt time.Time
}
