package cmd

import (
	"errors"
	"fmt"
	"os"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CatalogSeedFile is the YAML layout of CATALOG_SEED_FILE:
//
//	stores:
//	  - id: 7b1c1f0e-3c4e-4d8a-9a51-2f0c3f6e1a10
//	    name: North Depot
//	    operationCostPercent: "20"
//	    currencyPrecision: 2
//	    products:
//	      - id: 0d9f...
//	        name: Rice 25kg
//	        basePrice: "100.00"
//	    customers:
//	      - id: 5a2e...
//	        name: Corner Shop
type CatalogSeedFile struct {
	Stores []SeedStore `yaml:"stores"`
}

type SeedStore struct {
	ID                   string         `yaml:"id"`
	Name                 string         `yaml:"name"`
	OperationCostPercent string         `yaml:"operationCostPercent"`
	CurrencyPrecision    *int32         `yaml:"currencyPrecision"`
	Products             []SeedProduct  `yaml:"products"`
	Customers            []SeedCustomer `yaml:"customers"`
}

type SeedProduct struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	BasePrice string `yaml:"basePrice"`
}

type SeedCustomer struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadCatalogSeed reads and parses a catalog seed file.
func LoadCatalogSeed(path string) (postgres.CatalogSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return postgres.CatalogSeed{}, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}
	return ParseCatalogSeed(data)
}

// ParseCatalogSeed builds catalog entries from YAML. Every invalid entry is
// reported, not just the first.
func ParseCatalogSeed(data []byte) (postgres.CatalogSeed, error) {
	var file CatalogSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return postgres.CatalogSeed{}, fmt.Errorf("failed to parse catalog seed YAML: %w", err)
	}

	var (
		seed     postgres.CatalogSeed
		problems []error
	)
	for i, s := range file.Stores {
		store, err := s.toDomain()
		if err != nil {
			problems = append(problems, fmt.Errorf("stores[%d]: %w", i, err))
			continue
		}
		seed.Stores = append(seed.Stores, store)

		for j, p := range s.Products {
			product, productErr := p.toDomain(store.ID())
			if productErr != nil {
				problems = append(problems, fmt.Errorf("stores[%d].products[%d]: %w", i, j, productErr))
				continue
			}
			seed.Products = append(seed.Products, product)
		}
		for j, c := range s.Customers {
			customer, customerErr := c.toDomain(store.ID())
			if customerErr != nil {
				problems = append(problems, fmt.Errorf("stores[%d].customers[%d]: %w", i, j, customerErr))
				continue
			}
			seed.Customers = append(seed.Customers, customer)
		}
	}

	if err := errors.Join(problems...); err != nil {
		return postgres.CatalogSeed{}, err
	}
	return seed, nil
}

func (s SeedStore) toDomain() (*catalog.Store, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}
	percent, err := decimal.NewFromString(s.OperationCostPercent)
	if err != nil {
		return nil, fmt.Errorf("operationCostPercent: %w", err)
	}
	precision := pricing.DefaultPrecision
	if s.CurrencyPrecision != nil {
		precision = *s.CurrencyPrecision
	}
	return catalog.NewStore(id, s.Name, percent, precision)
}

func (p SeedProduct) toDomain(storeID kernel.UUID) (*catalog.Product, error) {
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return nil, err
	}
	basePrice, err := decimal.NewFromString(p.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("basePrice: %w", err)
	}
	return catalog.NewProduct(id, storeID, p.Name, basePrice)
}

func (c SeedCustomer) toDomain(storeID kernel.UUID) (*catalog.Customer, error) {
	id, err := kernel.UUIDFromString(c.ID)
	if err != nil {
		return nil, err
	}
	return catalog.NewCustomer(id, storeID, c.Name)
}
