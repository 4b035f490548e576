package catalogrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{db: db, tracker: tracker}
}

// Add registers a store. Used when seeding the catalog.
func (r *GormStoreRepository) Add(ctx context.Context, store *catalog.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}
	dto := storeFromDomain(store)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists the store's operation cost percentage.
func (r *GormStoreRepository) Update(ctx context.Context, store *catalog.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StoreDTO{}).
		Where("id = ?", store.ID().Bytes()).
		Update("operation_cost_percent", store.OperationCostPercent())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("store", store.ID().String())
	}

	r.tracker.TrackAggregate(store.ID(), store)
	return nil
}

func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}
	return storeToDomain(dto)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add registers a product. Used when seeding the catalog.
func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	dto := productFromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}
	return productToDomain(dto)
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add registers a customer. Used when seeding the catalog.
func (r *GormCustomerRepository) Add(ctx context.Context, customer *catalog.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	dto := customerFromDomain(customer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}
	return customerToDomain(dto)
}
