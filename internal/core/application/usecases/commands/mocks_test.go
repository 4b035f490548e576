package commands_test

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListRequestedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOverrideRepository struct{ mock.Mock }

func (m *MockOverrideRepository) Get(ctx context.Context, customerID, productID kernel.UUID) (*pricing.Override, error) {
	args := m.Called(ctx, customerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Override), args.Error(1)
}

func (m *MockOverrideRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*pricing.Override, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Override), args.Error(1)
}

func (m *MockOverrideRepository) Add(ctx context.Context, o *pricing.Override) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOverrideRepository) Update(ctx context.Context, o *pricing.Override) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOverrideRepository) Delete(ctx context.Context, customerID, productID kernel.UUID) error {
	args := m.Called(ctx, customerID, productID)
	return args.Error(0)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Store), args.Error(1)
}

func (m *MockStoreRepository) Update(ctx context.Context, s *catalog.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Customer), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OverrideRepository() ports.OverrideRepository {
	args := m.Called()
	return args.Get(0).(ports.OverrideRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockOverrideUoWFactory struct{ mock.Mock }

func (m *MockOverrideUoWFactory) Create() commands.OverrideUoW {
	args := m.Called()
	return args.Get(0).(commands.OverrideUoW)
}

type MockStoreUoWFactory struct{ mock.Mock }

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
