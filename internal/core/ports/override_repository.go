package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
)

// OverrideRepository stores customer-specific pricing overrides. At most one
// override exists per (customer, product) pair.
type OverrideRepository interface {
	// Get returns the override for the pair, or (nil, nil) when the customer has
	// no override for the product.
	Get(ctx context.Context, customerID, productID kernel.UUID) (*pricing.Override, error)

	// ListByCustomer returns every override of the customer ordered by product.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*pricing.Override, error)

	// Add stores a new override. Fails with pricing.ErrDuplicateOverride when
	// the pair already has one.
	Add(ctx context.Context, override *pricing.Override) error

	// Update replaces the rule of an existing override.
	// Returns errs.ErrObjectNotFound when the pair has none.
	Update(ctx context.Context, override *pricing.Override) error

	// Delete removes the override of the pair.
	// Returns errs.ErrObjectNotFound when the pair has none.
	Delete(ctx context.Context, customerID, productID kernel.UUID) error
}
