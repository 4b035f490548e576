package catalog

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer buys recurrently from exactly one store.
type Customer struct {
	id      kernel.UUID
	storeID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

func NewCustomer(id, storeID kernel.UUID, name string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := storeID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("storeId", err))
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	c.id = id
	c.storeID = storeID
	c.name = strings.TrimSpace(name)
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) StoreID() kernel.UUID {
	return c.storeID
}

func (c *Customer) Name() string {
	return c.name
}

// BelongsTo reports whether the customer is served by storeID.
func (c *Customer) BelongsTo(storeID kernel.UUID) bool {
	return c.storeID.IsEqual(storeID)
}
