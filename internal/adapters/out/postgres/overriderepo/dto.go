// Package overriderepo persists customer-specific pricing overrides.
// Each row holds one rule for a (customer, product) pair.
package overriderepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverrideDTO represents a pricing override row. The composite primary key
// enforces at most one override per customer and product.
type OverrideDTO struct {
	CustomerID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RuleKind   string          `gorm:"type:varchar(32);not null"`
	RuleValue  decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "customer_price_overrides".
func (OverrideDTO) TableName() string {
	return "customer_price_overrides"
}

func fromDomain(override *pricing.Override) OverrideDTO {
	return OverrideDTO{
		CustomerID: override.CustomerID().Bytes(),
		ProductID:  override.ProductID().Bytes(),
		RuleKind:   string(pricing.KindOf(override.Rule())),
		RuleValue:  pricing.RuleValue(override.Rule()),
		UpdatedAt:  override.UpdatedAt(),
	}
}

func toDomain(dto OverrideDTO) (*pricing.Override, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	rule, err := pricing.RuleFromParts(pricing.RuleKind(dto.RuleKind), dto.RuleValue)
	if err != nil {
		return nil, err
	}
	return pricing.RestoreOverride(customerID, productID, rule, dto.UpdatedAt)
}
