// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// A unit of work spans one database transaction; every repository obtained from it
// while the transaction is open reads and writes through that transaction.
//
// Key Features:
//   - Transaction management across the order, override and catalog repositories
//   - Aggregate tracking for post-commit processing
//   - Proper isolation between concurrent operations
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err := o.AdvanceTo(order.Processing, now); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err // errs.ErrConcurrencyConflict when another writer won
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Orders use optimistic locking on their version column instead of row locks
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/overriderepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Models lists every persisted DTO, for AutoMigrate.
func Models() []any {
	return []any{
		&catalogrepo.StoreDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.CustomerDTO{},
		&overriderepo.OverrideDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state
// and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction and
// forgets the aggregates tracked so far.
// Returns gorm.ErrInvalidTransaction if no transaction is active, so a
// deferred Rollback after Commit is harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository provides order persistence bound to the current transaction,
// or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// OverrideRepository provides override persistence bound to the current transaction.
func (uow *GormUnitOfWork) OverrideRepository() ports.OverrideRepository {
	return overriderepo.NewGormOverrideRepository(uow.conn(), uow)
}

// StoreRepository provides store persistence bound to the current transaction.
func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	return catalogrepo.NewGormStoreRepository(uow.conn(), uow)
}

// ProductRepository provides product lookups bound to the current transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn())
}

// CustomerRepository provides customer lookups bound to the current transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return catalogrepo.NewGormCustomerRepository(uow.conn())
}

// TrackAggregate registers an aggregate as written within this unit of work.
// Repositories call it after each successful Add, Update or Delete.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregateIDs lists the identifiers of aggregates written so far, in
// write order.
func (uow *GormUnitOfWork) TrackedAggregateIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
