package pricing

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPricingInput is returned for negative prices or percentages,
	// discounts outside [0, 100] and negative precisions. The wrapped
	// errs.ValueIsOutOfRangeError names the offending field.
	ErrInvalidPricingInput = errors.New("invalid pricing input")

	// ErrDuplicateOverride is returned when an override already exists for a
	// (customer, product) pair.
	ErrDuplicateOverride = errors.New("duplicate override")
)

var hundred = decimal.NewFromInt(100)

// RuleKind names the variant of a Rule. It is also the persisted and
// transported representation of the variant.
type RuleKind string

const (
	// RuleNone marks the absence of an override.
	RuleNone RuleKind = "none"

	// RuleFixedPrice replaces the marked-up price with a fixed unit price.
	RuleFixedPrice RuleKind = "fixed_price"

	// RuleDiscountPercent discounts the marked-up price by a percentage.
	RuleDiscountPercent RuleKind = "discount_percent"
)

// Rule is a customer-specific price rule. It is a closed sum type with exactly
// two variants, FixedPrice and DiscountPercent; the unexported methods keep
// other packages from adding more. A nil Rule means "no override".
type Rule interface {
	Kind() RuleKind
	validate() error
	apply(markedUp decimal.Decimal) decimal.Decimal
}

// FixedPrice overrides the unit price with Price, regardless of markup.
type FixedPrice struct {
	Price decimal.Decimal
}

// NewFixedPrice builds a fixed-price rule. Price must be non-negative.
func NewFixedPrice(price decimal.Decimal) (FixedPrice, error) {
	rule := FixedPrice{Price: price}
	if err := rule.validate(); err != nil {
		return FixedPrice{}, err
	}
	return rule, nil
}

func (FixedPrice) Kind() RuleKind {
	return RuleFixedPrice
}

func (r FixedPrice) validate() error {
	if r.Price.IsNegative() {
		return invalidInput("fixedPrice", r.Price, 0, nil)
	}
	return nil
}

func (r FixedPrice) apply(decimal.Decimal) decimal.Decimal {
	return r.Price
}

// DiscountPercent takes Percent percent off the marked-up price.
type DiscountPercent struct {
	Percent decimal.Decimal
}

// NewDiscountPercent builds a discount rule. Percent must lie in [0, 100].
func NewDiscountPercent(percent decimal.Decimal) (DiscountPercent, error) {
	rule := DiscountPercent{Percent: percent}
	if err := rule.validate(); err != nil {
		return DiscountPercent{}, err
	}
	return rule, nil
}

func (DiscountPercent) Kind() RuleKind {
	return RuleDiscountPercent
}

func (r DiscountPercent) validate() error {
	if r.Percent.IsNegative() || r.Percent.GreaterThan(hundred) {
		return invalidInput("discountPercent", r.Percent, 0, 100)
	}
	return nil
}

func (r DiscountPercent) apply(markedUp decimal.Decimal) decimal.Decimal {
	return markedUp.Mul(decimal.NewFromInt(1).Sub(r.Percent.Shift(-2)))
}

// KindOf returns the kind of rule, RuleNone for a nil rule.
func KindOf(rule Rule) RuleKind {
	if rule == nil {
		return RuleNone
	}
	return rule.Kind()
}

// RuleFromParts rebuilds a rule from its persisted or transported kind and
// value. RuleNone yields a nil rule.
func RuleFromParts(kind RuleKind, value decimal.Decimal) (Rule, error) {
	switch kind {
	case RuleNone:
		return nil, nil
	case RuleFixedPrice:
		return NewFixedPrice(value)
	case RuleDiscountPercent:
		return NewDiscountPercent(value)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("ruleKind", fmt.Errorf("%q is not a known rule kind", kind))
	}
}

// RuleValue returns the number carried by the rule: the fixed price or the
// discount percentage. A nil rule yields zero.
func RuleValue(rule Rule) decimal.Decimal {
	switch r := rule.(type) {
	case FixedPrice:
		return r.Price
	case DiscountPercent:
		return r.Percent
	default:
		return decimal.Zero
	}
}

func invalidInput(field string, value decimal.Decimal, minValue, maxValue any) error {
	return fmt.Errorf("%w: %w", ErrInvalidPricingInput,
		errs.NewValueIsOutOfRangeError(field, value.String(), minValue, maxValue))
}
