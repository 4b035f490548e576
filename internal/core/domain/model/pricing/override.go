package pricing

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrOverrideIsNotConstructed is returned when an Override was not built via
// NewOverride or RestoreOverride.
var ErrOverrideIsNotConstructed = errors.New("Override must be created via NewOverride constructor")

// Override is a customer-specific price rule for one product. The pair
// (customerID, productID) is its identity; at most one override exists per pair.
type Override struct {
	customerID kernel.UUID
	productID  kernel.UUID
	rule       Rule
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewOverride creates an override. The rule is mandatory and must be valid.
func NewOverride(customerID, productID kernel.UUID, rule Rule, at time.Time) (*Override, error) {
	o := &Override{
		updatedAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setProductID(productID),
		o.setRule(rule),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOverride rebuilds an override from persistence.
func RestoreOverride(customerID, productID kernel.UUID, rule Rule, updatedAt time.Time) (*Override, error) {
	return NewOverride(customerID, productID, rule, updatedAt)
}

// Validate ensures the override was created through its constructor.
func (o *Override) Validate() error {
	if o == nil {
		return ErrOverrideIsNotConstructed
	}
	return o.guard.Validate(ErrOverrideIsNotConstructed)
}

func (o *Override) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Override) ProductID() kernel.UUID {
	return o.productID
}

func (o *Override) Rule() Rule {
	return o.rule
}

func (o *Override) UpdatedAt() time.Time {
	return o.updatedAt
}

// Change replaces the rule. Orders already placed keep their locked prices;
// the new rule only affects later quotes.
func (o *Override) Change(rule Rule, at time.Time) error {
	if err := o.setRule(rule); err != nil {
		return err
	}
	o.updatedAt = at
	return nil
}

func (o *Override) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Override) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	o.productID = id
	return nil
}

func (o *Override) setRule(rule Rule) error {
	if rule == nil {
		return errs.NewValueIsRequiredError("rule")
	}
	if err := rule.validate(); err != nil {
		return err
	}
	o.rule = rule
	return nil
}

// NewDuplicateOverrideError reports that the pair already has an override.
// The result matches both ErrDuplicateOverride and errs.ErrObjectAlreadyExists.
func NewDuplicateOverrideError(customerID, productID kernel.UUID) error {
	return fmt.Errorf("%w: %w", ErrDuplicateOverride,
		errs.NewObjectAlreadyExistsError("override", customerID.String()+"/"+productID.String()))
}
