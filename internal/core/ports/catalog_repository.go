package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
)

// StoreRepository reads stores and persists operation-cost changes.
type StoreRepository interface {
	// Get returns errs.ErrObjectNotFound for unknown stores.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Store, error)
	Update(ctx context.Context, store *catalog.Store) error
}

// ProductRepository reads catalog products.
type ProductRepository interface {
	// Get returns errs.ErrObjectNotFound for unknown products.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// CustomerRepository reads customers registered with stores.
type CustomerRepository interface {
	// Get returns errs.ErrObjectNotFound for unknown customers.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error)
}
