package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand asks to move an order to the target status.
// Whether the move is legal is decided against the stored status when the
// command is handled.
//
// Example:
//
//	cmd, err := NewAdvanceOrderStatusCommand(orderID, order.Processing)
type AdvanceOrderStatusCommand struct {
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(orderID kernel.UUID, target order.Status) (AdvanceOrderStatusCommand, error) {
	var problems []error
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := target.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}
