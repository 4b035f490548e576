package overriderepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOverrideRepository implements OverrideRepository using GORM.
type GormOverrideRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOverrideRepository creates a new GORM override repository.
func NewGormOverrideRepository(db *gorm.DB, tracker aggregateTracker) *GormOverrideRepository {
	return &GormOverrideRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get returns nil without error when the pair has no override.
func (r *GormOverrideRepository) Get(ctx context.Context, customerID, productID kernel.UUID) (*pricing.Override, error) {
	if err := errors.Join(customerID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto OverrideDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND product_id = ?", customerID.Bytes(), productID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// ListByCustomer returns the customer's overrides ordered by product.
func (r *GormOverrideRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*pricing.Override, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OverrideDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("product_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	overrides := make([]*pricing.Override, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// Add inserts a new override, failing with pricing.ErrDuplicateOverride when
// the pair already has one.
func (r *GormOverrideRepository) Add(ctx context.Context, override *pricing.Override) error {
	if err := override.Validate(); err != nil {
		return err
	}

	dto := fromDomain(override)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pricing.NewDuplicateOverrideError(override.CustomerID(), override.ProductID())
	}

	r.tracker.TrackAggregate(override.CustomerID(), override)
	return nil
}

// Update replaces the rule of an existing override.
func (r *GormOverrideRepository) Update(ctx context.Context, override *pricing.Override) error {
	if err := override.Validate(); err != nil {
		return err
	}

	dto := fromDomain(override)
	result := r.db.WithContext(ctx).Model(&OverrideDTO{}).
		Where("customer_id = ? AND product_id = ?", dto.CustomerID, dto.ProductID).
		Updates(map[string]any{
			"rule_kind":  dto.RuleKind,
			"rule_value": dto.RuleValue,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(override.CustomerID(), override.ProductID())
	}

	r.tracker.TrackAggregate(override.CustomerID(), override)
	return nil
}

// Delete removes the pair's override.
func (r *GormOverrideRepository) Delete(ctx context.Context, customerID, productID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), productID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID.Bytes(), productID.Bytes()).
		Delete(&OverrideDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound(customerID, productID)
	}
	return nil
}

func notFound(customerID, productID kernel.UUID) error {
	return errs.NewObjectNotFoundError("override", customerID.String()+"/"+productID.String())
}
