// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
)

// Clock returns the current time. Handlers take it as a dependency so tests
// control timestamps.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OverrideRepoFactory provides access to the override repository within a transaction.
	OverrideRepoFactory interface {
		OverrideRepository() ports.OverrideRepository
	}

	// CatalogRepoFactory provides access to the catalog repositories within a transaction.
	CatalogRepoFactory interface {
		StoreRepository() ports.StoreRepository
		ProductRepository() ports.ProductRepository
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for commands that only change existing orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OverrideUoW manages transactions for override maintenance. The catalog
	// is read to check that customer and product exist.
	OverrideUoW interface {
		TxManager
		OverrideRepoFactory
		CatalogRepoFactory
	}

	// OverrideUoWFactory creates new override unit of work instances.
	OverrideUoWFactory interface {
		Create() OverrideUoW
	}

	// StoreUoW manages transactions for store settings changes.
	StoreUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// PlacementUoW spans everything order creation reads and writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   store, err := uow.StoreRepository().Get(ctx, storeID)
	//   override, err := uow.OverrideRepository().Get(ctx, customerID, productID)
	//   // ... price and create the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		OverrideRepoFactory
		CatalogRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)
