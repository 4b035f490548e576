package cmd

import (
	"log/slog"
	"time"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      commands.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if config.TransitionMaxAttempts <= 0 {
		config.TransitionMaxAttempts = commands.DefaultTransitionMaxAttempts
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.config.TransitionMaxAttempts)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock, c.config.TransitionMaxAttempts)
}

func (c *CompositionRoot) overrideUoWFactory() commands.OverrideUoWFactory {
	return FuncOverrideUoWFactory(func() commands.OverrideUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOverrideCommandHandler() commands.CreateOverrideCommandHandler {
	return commands.NewCreateOverrideCommandHandler(c.overrideUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOverrideCommandHandler() commands.UpdateOverrideCommandHandler {
	return commands.NewUpdateOverrideCommandHandler(c.overrideUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOverrideCommandHandler() commands.DeleteOverrideCommandHandler {
	return commands.NewDeleteOverrideCommandHandler(c.overrideUoWFactory())
}

func (c *CompositionRoot) CreateChangeOperationCostCommandHandler() commands.ChangeOperationCostCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOperationCostCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireStaleRequestsCommandHandler() commands.ExpireStaleRequestsCommandHandler {
	return commands.NewExpireStaleRequestsCommandHandler(
		c.orderUoWFactory(),
		c.clock,
		c.config.TransitionMaxAttempts,
		c.logger,
	)
}

func (c *CompositionRoot) CreateQuotePriceQueryHandler() queries.QuotePriceQueryHandler {
	return queries.NewQuotePriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOverridesQueryHandler() queries.ListCustomerOverridesQueryHandler {
	return queries.NewListCustomerOverridesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	advanceOrderStatus := c.CreateAdvanceOrderStatusCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	createOverride := c.CreateCreateOverrideCommandHandler()
	updateOverride := c.CreateUpdateOverrideCommandHandler()
	deleteOverride := c.CreateDeleteOverrideCommandHandler()
	changeOperationCost := c.CreateChangeOperationCostCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:           &createOrder,
		AdvanceOrderStatus:    &advanceOrderStatus,
		CancelOrder:           &cancelOrder,
		CreateOverride:        &createOverride,
		UpdateOverride:        &updateOverride,
		DeleteOverride:        &deleteOverride,
		ChangeOperationCost:   &changeOperationCost,
		QuotePrice:            c.CreateQuotePriceQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetOpenOrders:         c.CreateGetOpenOrdersQueryHandler(),
		ListCustomerOverrides: c.CreateListCustomerOverridesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireStaleRequestsCommandHandler(), c.config.OrderRequestTTL, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOverrideUoWFactory func() commands.OverrideUoW

func (f FuncOverrideUoWFactory) Create() commands.OverrideUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}
