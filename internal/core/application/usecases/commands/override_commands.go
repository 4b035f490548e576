package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOverrideCommandIsNotConstructed = errors.New(
		"CreateOverrideCommand must be created via NewCreateOverrideCommand constructor",
	)
	ErrUpdateOverrideCommandIsNotConstructed = errors.New(
		"UpdateOverrideCommand must be created via NewUpdateOverrideCommand constructor",
	)
	ErrDeleteOverrideCommandIsNotConstructed = errors.New(
		"DeleteOverrideCommand must be created via NewDeleteOverrideCommand constructor",
	)
)

// overrideKey identifies the (customer, product) pair an override command targets.
type overrideKey struct {
	customerID kernel.UUID
	productID  kernel.UUID
}

func newOverrideKey(customerID, productID kernel.UUID) (overrideKey, error) {
	var problems []error
	if err := customerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := productID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("productId", err))
	}
	if err := errors.Join(problems...); err != nil {
		return overrideKey{}, err
	}
	return overrideKey{customerID: customerID, productID: productID}, nil
}

func (k overrideKey) CustomerID() kernel.UUID {
	return k.customerID
}

func (k overrideKey) ProductID() kernel.UUID {
	return k.productID
}

// CreateOverrideCommand sets a price rule for a customer and product that
// have none yet.
//
// Example:
//
//	rule, _ := pricing.NewDiscountPercent(decimal.NewFromInt(10))
//	cmd, err := NewCreateOverrideCommand(customerID, productID, rule)
type CreateOverrideCommand struct {
	overrideKey
	rule pricing.Rule

	guard guard.ConstructorGuard
}

func NewCreateOverrideCommand(customerID, productID kernel.UUID, rule pricing.Rule) (CreateOverrideCommand, error) {
	key, keyErr := newOverrideKey(customerID, productID)
	if err := errors.Join(keyErr, requireRule(rule)); err != nil {
		return CreateOverrideCommand{}, err
	}
	return CreateOverrideCommand{overrideKey: key, rule: rule, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOverrideCommand) Validate() error {
	return c.guard.Validate(ErrCreateOverrideCommandIsNotConstructed)
}

func (c CreateOverrideCommand) Rule() pricing.Rule {
	return c.rule
}

// UpdateOverrideCommand replaces the rule of an existing override.
type UpdateOverrideCommand struct {
	overrideKey
	rule pricing.Rule

	guard guard.ConstructorGuard
}

func NewUpdateOverrideCommand(customerID, productID kernel.UUID, rule pricing.Rule) (UpdateOverrideCommand, error) {
	key, keyErr := newOverrideKey(customerID, productID)
	if err := errors.Join(keyErr, requireRule(rule)); err != nil {
		return UpdateOverrideCommand{}, err
	}
	return UpdateOverrideCommand{overrideKey: key, rule: rule, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOverrideCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOverrideCommandIsNotConstructed)
}

func (c UpdateOverrideCommand) Rule() pricing.Rule {
	return c.rule
}

// DeleteOverrideCommand removes a customer's override for a product.
type DeleteOverrideCommand struct {
	overrideKey

	guard guard.ConstructorGuard
}

func NewDeleteOverrideCommand(customerID, productID kernel.UUID) (DeleteOverrideCommand, error) {
	key, err := newOverrideKey(customerID, productID)
	if err != nil {
		return DeleteOverrideCommand{}, err
	}
	return DeleteOverrideCommand{overrideKey: key, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOverrideCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOverrideCommandIsNotConstructed)
}

func requireRule(rule pricing.Rule) error {
	if rule == nil {
		return errs.NewValueIsRequiredError("rule")
	}
	return nil
}
