package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// DefaultTransitionMaxAttempts bounds how often a transition is retried after
// losing a concurrent write.
const DefaultTransitionMaxAttempts = 3

// transitionWithRetry loads the order, applies change and saves it in one
// transaction. When the save loses to a concurrent writer the whole attempt is
// repeated on a fresh copy, so change is re-validated against the latest
// status. Other errors are returned at once.
func transitionWithRetry(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	maxAttempts int,
	orderID kernel.UUID,
	change func(*order.Order) error,
) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for range maxAttempts {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = transitionOnce(ctx, uowFactory, orderID, change)
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}

func transitionOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	change func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = change(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
