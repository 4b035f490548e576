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

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an item a store sells at a non-negative base unit price.
type Product struct {
	id        kernel.UUID
	storeID   kernel.UUID
	name      string
	basePrice decimal.Decimal

	guard guard.ConstructorGuard
}

func NewProduct(id, storeID kernel.UUID, name string, basePrice decimal.Decimal) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setStoreID(storeID),
		p.setName(name),
		p.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) StoreID() kernel.UUID {
	return p.storeID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) BasePrice() decimal.Decimal {
	return p.basePrice
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	p.id = id
	return nil
}

func (p *Product) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	p.storeID = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setBasePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: %w", pricing.ErrInvalidPricingInput,
			errs.NewValueIsOutOfRangeError("basePrice", price.String(), 0, nil))
	}
	p.basePrice = price
	return nil
}
