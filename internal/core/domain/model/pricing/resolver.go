package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places prices are rounded to when
// a store does not configure its own currency precision.
const DefaultPrecision int32 = 2

// Breakdown explains how a unit price was derived. Monetary amounts other than
// BasePrice are rounded to the precision used for the quote.
type Breakdown struct {
	BasePrice            decimal.Decimal
	OperationCostPercent decimal.Decimal
	MarkupAmount         decimal.Decimal
	MarkedUpPrice        decimal.Decimal
	OverrideKind         RuleKind
	OverrideValue        decimal.Decimal
	OverrideApplied      bool
	FinalPrice           decimal.Decimal
}

// Quote is the effective unit price of a product for a customer.
type Quote struct {
	UnitPrice decimal.Decimal
	Breakdown Breakdown
}

// Resolve computes the effective unit price:
//
//	markedUp  = basePrice × (1 + operationCostPercent / 100)
//	effective = rule.Price                           (FixedPrice)
//	          | markedUp × (1 − rule.Percent / 100)  (DiscountPercent)
//	          | markedUp                             (nil rule)
//
// and rounds it half-up to precision decimal places.
//
// All invalid inputs are reported together; each error wraps
// ErrInvalidPricingInput.
//
// Example:
//
//	discount, _ := pricing.NewDiscountPercent(decimal.NewFromInt(10))
//	quote, err := pricing.Resolve(decimal.NewFromInt(100), decimal.NewFromInt(20), discount, pricing.DefaultPrecision)
//	// quote.UnitPrice == 108.00, quote.Breakdown.MarkedUpPrice == 120.00
func Resolve(basePrice, operationCostPercent decimal.Decimal, rule Rule, precision int32) (Quote, error) {
	if err := validateInputs(basePrice, operationCostPercent, rule, precision); err != nil {
		return Quote{}, err
	}

	markup := basePrice.Mul(operationCostPercent.Shift(-2))
	markedUp := basePrice.Add(markup)

	effective := markedUp
	if rule != nil {
		effective = rule.apply(markedUp)
	}
	final := roundHalfUp(effective, precision)

	return Quote{
		UnitPrice: final,
		Breakdown: Breakdown{
			BasePrice:            basePrice,
			OperationCostPercent: operationCostPercent,
			MarkupAmount:         roundHalfUp(markup, precision),
			MarkedUpPrice:        roundHalfUp(markedUp, precision),
			OverrideKind:         KindOf(rule),
			OverrideValue:        RuleValue(rule),
			OverrideApplied:      rule != nil,
			FinalPrice:           final,
		},
	}, nil
}

func validateInputs(basePrice, operationCostPercent decimal.Decimal, rule Rule, precision int32) error {
	var problems []error
	if basePrice.IsNegative() {
		problems = append(problems, invalidInput("basePrice", basePrice, 0, nil))
	}
	if operationCostPercent.IsNegative() {
		problems = append(problems, invalidInput("operationCostPercent", operationCostPercent, 0, nil))
	}
	if rule != nil {
		if err := rule.validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if precision < 0 {
		problems = append(problems, invalidInput("precision", decimal.NewFromInt32(precision), 0, nil))
	}
	return errors.Join(problems...)
}

// roundHalfUp rounds non-negative amounts half-up. decimal.Round rounds half
// away from zero, which coincides with half-up for the non-negative values the
// resolver accepts.
func roundHalfUp(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Round(precision)
}
