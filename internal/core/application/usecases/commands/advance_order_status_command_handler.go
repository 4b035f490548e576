package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler applies a lifecycle transition with
// optimistic concurrency. A save that loses to a concurrent writer is retried
// up to maxAttempts times; if every attempt loses, the
// errs.ConcurrencyConflictError of the last attempt is returned.
//
// Example:
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory, time.Now, 3)
//	cmd, _ := NewAdvanceOrderStatusCommand(orderID, order.Pending)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrIllegalTransition) {
//	    // the order is not in a status that can move to PENDING
//	}
type AdvanceOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	now         Clock
	maxAttempts int
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	now Clock,
	maxAttempts int,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		now:         now,
		maxAttempts: maxAttempts,
	}
}

func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionWithRetry(ctx, h.uowFactory, h.maxAttempts, cmd.OrderID(), func(o *order.Order) error {
		return o.AdvanceTo(cmd.Target(), h.now())
	})
}
