// Package catalogrepo persists the read side of the catalog: stores, products
// and customers. Catalog maintenance happens outside this service; the only
// write this package exposes to the application is a store's operation cost.
package catalogrepo

import (
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreDTO represents the database structure for stores.
type StoreDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"type:varchar(255);not null"`
	OperationCostPercent decimal.Decimal `gorm:"type:numeric(9,4);not null"`
	CurrencyPrecision    int32           `gorm:"type:smallint;not null;default:2"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	BasePrice decimal.Decimal `gorm:"type:numeric(20,8);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// CustomerDTO represents the database structure for customers.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func storeFromDomain(store *catalog.Store) StoreDTO {
	return StoreDTO{
		ID:                   store.ID().Bytes(),
		Name:                 store.Name(),
		OperationCostPercent: store.OperationCostPercent(),
		CurrencyPrecision:    store.CurrencyPrecision(),
	}
}

func storeToDomain(dto StoreDTO) (*catalog.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(id, dto.Name, dto.OperationCostPercent, dto.CurrencyPrecision)
}

func productFromDomain(product *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:        product.ID().Bytes(),
		StoreID:   product.StoreID().Bytes(),
		Name:      product.Name(),
		BasePrice: product.BasePrice(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, storeID, dto.Name, dto.BasePrice)
}

func customerFromDomain(customer *catalog.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      customer.ID().Bytes(),
		StoreID: customer.StoreID().Bytes(),
		Name:    customer.Name(),
	}
}

func customerToDomain(dto CustomerDTO) (*catalog.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewCustomer(id, storeID, dto.Name)
}
