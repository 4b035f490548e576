package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ExpireStaleRequestsCommandHandler cancels Requested orders created before
// now minus the command's age. Each order is cancelled in its own transaction
// with the usual conflict retries. Orders that moved on in the meantime are
// skipped; they are no longer stale.
type ExpireStaleRequestsCommandHandler struct {
	uowFactory  OrderUoWFactory
	now         Clock
	maxAttempts int
	logger      *slog.Logger
}

func NewExpireStaleRequestsCommandHandler(
	uowFactory OrderUoWFactory,
	now Clock,
	maxAttempts int,
	logger *slog.Logger,
) ExpireStaleRequestsCommandHandler {
	return ExpireStaleRequestsCommandHandler{
		uowFactory:  uowFactory,
		now:         now,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "ExpireStaleRequests"),
	}
}

// Handle returns the number of orders it cancelled. An error on one order
// stops the run; orders cancelled before it stay cancelled.
func (h *ExpireStaleRequestsCommandHandler) Handle(ctx context.Context, cmd ExpireStaleRequestsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.OlderThan())

	ids, err := h.staleOrderIDs(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		err = transitionWithRetry(ctx, h.uowFactory, h.maxAttempts, id, func(o *order.Order) error {
			if o.Status() != order.Requested {
				return errAlreadyMoved
			}
			return o.Cancel(h.now())
		})
		switch {
		case errors.Is(err, errAlreadyMoved):
			h.logger.DebugContext(ctx, "order left REQUESTED before expiry", "orderId", id.String())
		case err != nil:
			return expired, err
		default:
			expired++
			h.logger.InfoContext(ctx, "stale order request cancelled", "orderId", id.String())
		}
	}

	return expired, nil
}

var errAlreadyMoved = errors.New("order already left REQUESTED")

func (h *ExpireStaleRequestsCommandHandler) staleOrderIDs(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().ListRequestedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(stale))
	for _, o := range stale {
		ids = append(ids, o.ID())
	}

	return ids, uow.Commit(ctx)
}
