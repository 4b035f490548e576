package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product and quantity. Prices are resolved by the handler.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a customer's request to order products from a store.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), storeID, customerID, []OrderLine{
//	    {ProductID: riceID, Quantity: 2},
//	    {ProductID: flourID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	storeID    kernel.UUID
	customerID kernel.UUID
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and lines. An empty line list
// fails with order.ErrEmptyOrder, a non-positive quantity with order.ErrInvalidQuantity.
func NewCreateOrderCommand(orderID, storeID, customerID kernel.UUID, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, storeID, customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setIDs(orderID, storeID, customerID kernel.UUID) error {
	var problems []error
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := storeID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("storeId", err))
	}
	if err := customerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.orderID = orderID
	c.storeID = storeID
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return order.ErrEmptyOrder
	}

	var problems []error
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("line %d: %w", i, errs.NewValueIsRequiredErrorWithCause("productId", err)))
		}
		if line.Quantity <= 0 {
			problems = append(problems, fmt.Errorf("line %d: %w: %w", i, order.ErrInvalidQuantity,
				errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, nil)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
