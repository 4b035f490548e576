// Package ports defines the persistence contracts of the storefront domain.
// These interfaces decouple the domain and application layers from the
// database adapters and make handlers testable with mocks.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are versioned: every successful Update increments the stored version.
type OrderRepository interface {
	// Add persists a new order with its line items and history.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status, history and price lock of an existing order.
	// The write succeeds only when the stored version still equals
	// aggregate.Version(); otherwise it fails with errs.ErrConcurrencyConflict
	// and nothing is written. On success the aggregate's version is advanced.
	//
	// Example:
	//   err := repo.Update(ctx, o)
	//   if errors.Is(err, errs.ErrConcurrencyConflict) {
	//       // reload and re-apply the transition
	//   }
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items and full history.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListRequestedBefore returns orders still in Requested status that were
	// created strictly before cutoff, oldest first.
	ListRequestedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
