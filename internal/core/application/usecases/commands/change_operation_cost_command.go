package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeOperationCostCommandIsNotConstructed = errors.New(
	"ChangeOperationCostCommand must be created via NewChangeOperationCostCommand constructor",
)

// ChangeOperationCostCommand sets a store's markup percentage. The change is
// prospective: already placed orders keep their prices.
//
// Example:
//
//	cmd, err := NewChangeOperationCostCommand(storeID, decimal.RequireFromString("17.5"))
type ChangeOperationCostCommand struct {
	storeID kernel.UUID
	percent decimal.Decimal

	guard guard.ConstructorGuard
}

func NewChangeOperationCostCommand(storeID kernel.UUID, percent decimal.Decimal) (ChangeOperationCostCommand, error) {
	var problems []error
	if err := storeID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("storeId", err))
	}
	if percent.IsNegative() {
		problems = append(problems, errors.Join(pricing.ErrInvalidPricingInput,
			errs.NewValueIsOutOfRangeError("operationCostPercent", percent.String(), 0, nil)))
	}
	if err := errors.Join(problems...); err != nil {
		return ChangeOperationCostCommand{}, err
	}

	return ChangeOperationCostCommand{
		storeID: storeID,
		percent: percent,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOperationCostCommand) Validate() error {
	return c.guard.Validate(ErrChangeOperationCostCommandIsNotConstructed)
}

func (c ChangeOperationCostCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c ChangeOperationCostCommand) Percent() decimal.Decimal {
	return c.percent
}
