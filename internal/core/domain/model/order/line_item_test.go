package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create valid line item", func(t *testing.T) {
		item, err := order.NewLineItem(productID, 3, decimal.RequireFromString("12.50"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, productID, item.ProductID())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "37.50", item.Subtotal().StringFixed(2))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := order.NewLineItem(productID, q, decimal.NewFromInt(1))
			require.ErrorIs(t, err, order.ErrInvalidQuantity)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject negative unit price", func(t *testing.T) {
		_, err := order.NewLineItem(productID, 1, decimal.RequireFromString("-0.01"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should report all problems together", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, 0, decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item order.LineItem
		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
