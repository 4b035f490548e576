package pricing_test

import (
	"testing"

	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolve_Scenarios(t *testing.T) {
	testCases := []struct {
		name     string
		base     string
		pct      string
		rule     pricing.Rule
		expected string
	}{
		{name: "markup only", base: "100", pct: "20", rule: nil, expected: "120.00"},
		{name: "discount on top of markup", base: "100", pct: "20", rule: pricing.DiscountPercent{Percent: d("10")}, expected: "108.00"},
		{name: "fixed price ignores markup", base: "100", pct: "20", rule: pricing.FixedPrice{Price: d("75.5")}, expected: "75.50"},
		{name: "zero markup", base: "19.99", pct: "0", rule: nil, expected: "19.99"},
		{name: "zero base", base: "0", pct: "35", rule: nil, expected: "0.00"},
		{name: "zero discount equals markup", base: "80", pct: "15", rule: pricing.DiscountPercent{Percent: d("0")}, expected: "92.00"},
		{name: "full discount yields zero", base: "80", pct: "15", rule: pricing.DiscountPercent{Percent: d("100")}, expected: "0.00"},
		{name: "half rounds up", base: "10.005", pct: "0", rule: nil, expected: "10.01"},
		{name: "below half rounds down", base: "10.0049", pct: "0", rule: nil, expected: "10.00"},
		{name: "fractional percentage", base: "33.33", pct: "12.5", rule: nil, expected: "37.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := pricing.Resolve(d(tc.base), d(tc.pct), tc.rule, pricing.DefaultPrecision)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, quote.UnitPrice.StringFixed(2))
			assert.True(t, quote.UnitPrice.Equal(quote.Breakdown.FinalPrice))
		})
	}
}

func TestResolve_Breakdown(t *testing.T) {
	t.Run("discount override", func(t *testing.T) {
		quote, err := pricing.Resolve(d("100"), d("20"), pricing.DiscountPercent{Percent: d("10")}, 2)
		require.NoError(t, err)

		b := quote.Breakdown
		assert.Equal(t, "100", b.BasePrice.String())
		assert.Equal(t, "20", b.OperationCostPercent.String())
		assert.Equal(t, "20.00", b.MarkupAmount.StringFixed(2))
		assert.Equal(t, "120.00", b.MarkedUpPrice.StringFixed(2))
		assert.Equal(t, pricing.RuleDiscountPercent, b.OverrideKind)
		assert.Equal(t, "10", b.OverrideValue.String())
		assert.True(t, b.OverrideApplied)
		assert.Equal(t, "108.00", b.FinalPrice.StringFixed(2))
	})

	t.Run("no override", func(t *testing.T) {
		quote, err := pricing.Resolve(d("50"), d("10"), nil, 2)
		require.NoError(t, err)

		assert.Equal(t, pricing.RuleNone, quote.Breakdown.OverrideKind)
		assert.False(t, quote.Breakdown.OverrideApplied)
		assert.True(t, quote.Breakdown.OverrideValue.IsZero())
	})
}

func TestResolve_Precision(t *testing.T) {
	quote, err := pricing.Resolve(d("10"), d("3.33"), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "10", quote.UnitPrice.String())

	quote, err = pricing.Resolve(d("10"), d("3.33"), nil, 3)
	require.NoError(t, err)
	assert.Equal(t, "10.333", quote.UnitPrice.String())
}

func TestResolve_InvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		base      string
		pct       string
		rule      pricing.Rule
		precision int32
		field     string
	}{
		{name: "negative base price", base: "-1", pct: "0", field: "basePrice", precision: 2},
		{name: "negative operation cost", base: "1", pct: "-0.5", field: "operationCostPercent", precision: 2},
		{name: "discount above 100", base: "1", pct: "0", rule: pricing.DiscountPercent{Percent: d("100.01")}, field: "discountPercent", precision: 2},
		{name: "negative discount", base: "1", pct: "0", rule: pricing.DiscountPercent{Percent: d("-5")}, field: "discountPercent", precision: 2},
		{name: "negative fixed price", base: "1", pct: "0", rule: pricing.FixedPrice{Price: d("-3")}, field: "fixedPrice", precision: 2},
		{name: "negative precision", base: "1", pct: "0", field: "precision", precision: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.Resolve(d(tc.base), d(tc.pct), tc.rule, tc.precision)

			require.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	t.Run("reports every invalid field", func(t *testing.T) {
		_, err := pricing.Resolve(d("-1"), d("-1"), nil, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "basePrice")
		assert.Contains(t, err.Error(), "operationCostPercent")
	})
}

func TestResolve_Properties(t *testing.T) {
	bases := []string{"0", "0.01", "1", "9.99", "100", "1234.567"}
	percents := []string{"0", "1", "7.5", "20", "150"}

	for _, base := range bases {
		for _, pct := range percents {
			plain, err := pricing.Resolve(d(base), d(pct), nil, 2)
			require.NoError(t, err)

			expected := d(base).Mul(decimal.NewFromInt(1).Add(d(pct).Div(decimal.NewFromInt(100)))).Round(2)
			assert.True(t, expected.Equal(plain.UnitPrice), "base=%s pct=%s", base, pct)

			fixed, err := pricing.Resolve(d(base), d(pct), pricing.FixedPrice{Price: d("42.42")}, 2)
			require.NoError(t, err)
			assert.Equal(t, "42.42", fixed.UnitPrice.StringFixed(2))

			zero, err := pricing.Resolve(d(base), d(pct), pricing.DiscountPercent{Percent: decimal.Zero}, 2)
			require.NoError(t, err)
			assert.True(t, plain.UnitPrice.Equal(zero.UnitPrice))

			full, err := pricing.Resolve(d(base), d(pct), pricing.DiscountPercent{Percent: d("100")}, 2)
			require.NoError(t, err)
			assert.True(t, full.UnitPrice.IsZero())
		}
	}
}
