package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels open orders, retrying on concurrent writes
// the same way AdvanceOrderStatusCommandHandler does. Completed and Cancelled
// orders fail with order.ErrIllegalTransition.
type CancelOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	now         Clock
	maxAttempts int
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, now Clock, maxAttempts int) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:  uowFactory,
		now:         now,
		maxAttempts: maxAttempts,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionWithRetry(ctx, h.uowFactory, h.maxAttempts, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel(h.now())
	})
}
