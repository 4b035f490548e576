package catalog

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxCurrencyPrecision bounds the number of decimal places a store may price in.
const MaxCurrencyPrecision int32 = 8

var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store is a distributor. Its operation-cost percentage marks up every product
// base price before customer overrides are applied.
type Store struct {
	id                   kernel.UUID
	name                 string
	operationCostPercent decimal.Decimal
	currencyPrecision    int32

	guard guard.ConstructorGuard
}

// NewStore creates a store. A currencyPrecision of zero or more is accepted;
// callers without a configured precision pass pricing.DefaultPrecision.
func NewStore(id kernel.UUID, name string, operationCostPercent decimal.Decimal, currencyPrecision int32) (*Store, error) {
	s := &Store{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setOperationCostPercent(operationCostPercent),
		s.setCurrencyPrecision(currencyPrecision),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

func (s *Store) Name() string {
	return s.name
}

func (s *Store) OperationCostPercent() decimal.Decimal {
	return s.operationCostPercent
}

func (s *Store) CurrencyPrecision() int32 {
	return s.currencyPrecision
}

// ChangeOperationCost sets a new markup percentage. The change is prospective:
// it affects quotes and orders placed afterwards only.
func (s *Store) ChangeOperationCost(percent decimal.Decimal) error {
	return s.setOperationCostPercent(percent)
}

// Quote resolves the price of product for a customer whose override (nil when
// none) is rule.
func (s *Store) Quote(product *Product, rule pricing.Rule) (pricing.Quote, error) {
	if err := product.Validate(); err != nil {
		return pricing.Quote{}, err
	}
	if !product.StoreID().IsEqual(s.id) {
		return pricing.Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("product %s does not belong to store %s", product.ID(), s.id),
		)
	}
	return pricing.Resolve(product.BasePrice(), s.operationCostPercent, rule, s.currencyPrecision)
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setOperationCostPercent(percent decimal.Decimal) error {
	if percent.IsNegative() {
		return fmt.Errorf("%w: %w", pricing.ErrInvalidPricingInput,
			errs.NewValueIsOutOfRangeError("operationCostPercent", percent.String(), 0, nil))
	}
	s.operationCostPercent = percent
	return nil
}

func (s *Store) setCurrencyPrecision(precision int32) error {
	if precision < 0 || precision > MaxCurrencyPrecision {
		return errs.NewValueIsOutOfRangeError("currencyPrecision", precision, 0, MaxCurrencyPrecision)
	}
	s.currencyPrecision = precision
	return nil
}
