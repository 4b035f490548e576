package postgres_test

import (
	"context"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

func (suite *UnitOfWorkIntegrationTestSuite) TestSeedCatalog_AddsOnlyMissingEntries() {
	ctx := context.Background()

	store, err := catalog.NewStore(kernel.NewUUID(), "North Depot", decimal.NewFromInt(20), 2)
	suite.Require().NoError(err)
	product, err := catalog.NewProduct(kernel.NewUUID(), store.ID(), "Rice 25kg", decimal.RequireFromString("100.00"))
	suite.Require().NoError(err)
	customer, err := catalog.NewCustomer(kernel.NewUUID(), store.ID(), "Corner Shop")
	suite.Require().NoError(err)

	seed := postgres_adapter.CatalogSeed{
		Stores:    []*catalog.Store{store},
		Products:  []*catalog.Product{product},
		Customers: []*catalog.Customer{customer},
	}

	added, err := postgres_adapter.SeedCatalog(ctx, suite.db, seed)
	suite.Require().NoError(err)
	suite.Equal(3, added)

	added, err = postgres_adapter.SeedCatalog(ctx, suite.db, seed)
	suite.Require().NoError(err)
	suite.Equal(0, added)

	uow := suite.factory.Create()
	loaded, err := uow.ProductRepository().Get(ctx, product.ID())
	suite.Require().NoError(err)
	suite.True(loaded.BasePrice().Equal(decimal.RequireFromString("100")))
}
