package postgres

import (
	"context"
	"errors"

	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// CatalogSeed holds catalog entries to register at startup.
type CatalogSeed struct {
	Stores    []*catalog.Store
	Products  []*catalog.Product
	Customers []*catalog.Customer
}

// SeedCatalog adds the seeded stores, products and customers in one
// transaction and returns how many were new. Entries whose id already exists
// are left as they are, so running it on every start is safe.
func SeedCatalog(ctx context.Context, db *gorm.DB, seed CatalogSeed) (int, error) {
	uow := &GormUnitOfWork{db: db}
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stores := catalogrepo.NewGormStoreRepository(uow.conn(), uow)
	products := catalogrepo.NewGormProductRepository(uow.conn())
	customers := catalogrepo.NewGormCustomerRepository(uow.conn())

	added := 0
	for _, store := range seed.Stores {
		ok, err := addIfMissing(ctx, store.ID(), stores.Get, stores.Add, store)
		if err != nil {
			return 0, err
		}
		if ok {
			added++
		}
	}
	for _, product := range seed.Products {
		ok, err := addIfMissing(ctx, product.ID(), products.Get, products.Add, product)
		if err != nil {
			return 0, err
		}
		if ok {
			added++
		}
	}
	for _, customer := range seed.Customers {
		ok, err := addIfMissing(ctx, customer.ID(), customers.Get, customers.Add, customer)
		if err != nil {
			return 0, err
		}
		if ok {
			added++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}
	return added, nil
}

func addIfMissing[T any](
	ctx context.Context,
	id kernel.UUID,
	get func(context.Context, kernel.UUID) (T, error),
	add func(context.Context, T) error,
	entry T,
) (bool, error) {
	_, err := get(ctx, id)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}
	if err = add(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}
