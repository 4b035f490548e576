package cmd

import (
	"testing"

	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogSeed(t *testing.T) {
	t.Run("builds_stores_products_and_customers", func(t *testing.T) {
		data := []byte(`
stores:
  - id: 7b1c1f0e-3c4e-4d8a-9a51-2f0c3f6e1a10
    name: North Depot
    operationCostPercent: "20"
    products:
      - id: 0d9f5c6a-1b2c-4d3e-8f90-a1b2c3d4e5f6
        name: Rice 25kg
        basePrice: "100.00"
    customers:
      - id: 5a2e8b7c-6d5e-4f3a-9b8c-7d6e5f4a3b2c
        name: Corner Shop
`)

		seed, err := ParseCatalogSeed(data)

		require.NoError(t, err)
		require.Len(t, seed.Stores, 1)
		require.Len(t, seed.Products, 1)
		require.Len(t, seed.Customers, 1)
		assert.Equal(t, pricing.DefaultPrecision, seed.Stores[0].CurrencyPrecision())
		assert.True(t, seed.Stores[0].OperationCostPercent().Equal(decimal.NewFromInt(20)))
		assert.True(t, seed.Products[0].StoreID().IsEqual(seed.Stores[0].ID()))
		assert.True(t, seed.Customers[0].StoreID().IsEqual(seed.Stores[0].ID()))
	})

	t.Run("reports_every_invalid_entry", func(t *testing.T) {
		data := []byte(`
stores:
  - id: 7b1c1f0e-3c4e-4d8a-9a51-2f0c3f6e1a10
    name: North Depot
    operationCostPercent: "-5"
  - id: 8c2d2f1f-4d5f-4e9b-8b62-3f1d4f7e2b21
    name: South Depot
    operationCostPercent: "10"
    currencyPrecision: 0
    products:
      - id: not-a-uuid
        name: Flour
        basePrice: "10"
`)

		_, err := ParseCatalogSeed(data)

		require.Error(t, err)
		assert.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "stores[1].products[0]")
	})

	t.Run("rejects_malformed_yaml", func(t *testing.T) {
		_, err := ParseCatalogSeed([]byte("stores: [unterminated"))

		assert.Error(t, err)
	})
}
