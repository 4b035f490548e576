package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/overriderepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB

	orderRepo    *orderrepo.GormOrderRepository
	overrideRepo *overriderepo.GormOverrideRepository

	store    *catalog.Store
	customer *catalog.Customer
	rice     *catalog.Product
	flour    *catalog.Product
}

func (suite *QueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(postgres.Models()...))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.overrideRepo = overriderepo.NewGormOverrideRepository(db, &mockAggregateTracker{})
}

func (suite *QueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesTestSuite) SetupTest() {
	ctx := context.Background()
	err := suite.db.Exec(`TRUNCATE TABLE order_status_history, order_line_items, orders,
		customer_price_overrides, customers, products, stores CASCADE`).Error
	suite.Require().NoError(err)

	suite.store, err = catalog.NewStore(kernel.NewUUID(), "Wholesale Foods", decimal.NewFromInt(20), pricing.DefaultPrecision)
	suite.Require().NoError(err)
	suite.customer, err = catalog.NewCustomer(kernel.NewUUID(), suite.store.ID(), "Corner Shop")
	suite.Require().NoError(err)
	suite.rice, err = catalog.NewProduct(kernel.NewUUID(), suite.store.ID(), "Rice 10kg", decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.flour, err = catalog.NewProduct(kernel.NewUUID(), suite.store.ID(), "Flour 5kg", decimal.NewFromInt(25))
	suite.Require().NoError(err)

	suite.Require().NoError(catalogrepo.NewGormStoreRepository(suite.db, &mockAggregateTracker{}).Add(ctx, suite.store))
	suite.Require().NoError(catalogrepo.NewGormCustomerRepository(suite.db).Add(ctx, suite.customer))
	products := catalogrepo.NewGormProductRepository(suite.db)
	suite.Require().NoError(products.Add(ctx, suite.rice))
	suite.Require().NoError(products.Add(ctx, suite.flour))
}

func (suite *QueriesTestSuite) addOverride(product *catalog.Product, rule pricing.Rule) {
	override, err := pricing.NewOverride(suite.customer.ID(), product.ID(), rule, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.overrideRepo.Add(context.Background(), override))
}

func (suite *QueriesTestSuite) addOrder(createdAt time.Time, unitPrice string, quantity int) *order.Order {
	item, err := order.NewLineItem(suite.rice.ID(), quantity, decimal.RequireFromString(unitPrice))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), suite.store.ID(), suite.customer.ID(), []order.LineItem{item}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueriesTestSuite) quote(product *catalog.Product) (queries.QuotePriceQueryResponse, error) {
	query, err := queries.NewQuotePriceQuery(suite.store.ID(), suite.customer.ID(), product.ID())
	suite.Require().NoError(err)
	return queries.NewQuotePriceQueryHandler(suite.db).Handle(context.Background(), query)
}

func (suite *QueriesTestSuite) TestQuotePrice_NoOverride() {
	resp, err := suite.quote(suite.rice)
	suite.Require().NoError(err)

	suite.Equal("120.00", resp.UnitPrice.StringFixed(2))
	suite.False(resp.Breakdown.OverrideApplied)
	suite.Equal(pricing.RuleNone, resp.Breakdown.OverrideKind)
	suite.Equal("120.00", resp.Breakdown.MarkedUpPrice.StringFixed(2))
}

func (suite *QueriesTestSuite) TestQuotePrice_DiscountOverride() {
	discount, err := pricing.NewDiscountPercent(decimal.NewFromInt(10))
	suite.Require().NoError(err)
	suite.addOverride(suite.rice, discount)

	resp, err := suite.quote(suite.rice)
	suite.Require().NoError(err)

	suite.Equal("108.00", resp.UnitPrice.StringFixed(2))
	suite.True(resp.Breakdown.OverrideApplied)
	suite.Equal(pricing.RuleDiscountPercent, resp.Breakdown.OverrideKind)
}

func (suite *QueriesTestSuite) TestQuotePrice_FixedOverride() {
	fixed, err := pricing.NewFixedPrice(decimal.RequireFromString("95"))
	suite.Require().NoError(err)
	suite.addOverride(suite.rice, fixed)

	resp, err := suite.quote(suite.rice)
	suite.Require().NoError(err)
	suite.Equal("95.00", resp.UnitPrice.StringFixed(2))
}

func (suite *QueriesTestSuite) TestQuotePrice_UnknownProduct() {
	query, err := queries.NewQuotePriceQuery(suite.store.ID(), suite.customer.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewQuotePriceQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestQuotePrice_UnknownStore() {
	query, err := queries.NewQuotePriceQuery(kernel.NewUUID(), suite.customer.ID(), suite.rice.ID())
	suite.Require().NoError(err)

	_, err = queries.NewQuotePriceQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), "store")
}

func (suite *QueriesTestSuite) TestGetOrder_ReturnsItemsAndHistory() {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o := suite.addOrder(createdAt, "120.00", 2)
	suite.Require().NoError(o.AdvanceTo(order.Pending, createdAt.Add(time.Hour)))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), resp.ID)
	suite.Equal(suite.store.ID(), resp.StoreID)
	suite.Equal(suite.customer.ID(), resp.CustomerID)
	suite.Equal(pricing.DefaultPrecision, resp.Precision)
	suite.Equal(order.Pending, resp.Status)
	suite.Require().Len(resp.Items, 1)
	suite.Equal(suite.rice.ID(), resp.Items[0].ProductID)
	suite.Equal("240.00", resp.Items[0].Subtotal.StringFixed(2))
	suite.Equal("240.00", resp.Total.StringFixed(2))
	suite.Require().NotNil(resp.PricesLockedAt)
	suite.True(createdAt.Add(time.Hour).Equal(*resp.PricesLockedAt))
	suite.Require().Len(resp.StatusHistory, 2)
	suite.Equal(order.Requested, resp.StatusHistory[0].Status)
	suite.Equal(order.Pending, resp.StatusHistory[1].Status)
}

func (suite *QueriesTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestGetOpenOrders_ExcludesTerminal() {
	now := time.Now().UTC().Truncate(time.Second)
	open := suite.addOrder(now.Add(-2*time.Hour), "120.00", 1)
	confirmed := suite.addOrder(now.Add(-time.Hour), "60.00", 3)
	suite.Require().NoError(confirmed.AdvanceTo(order.Pending, now))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), confirmed))
	cancelled := suite.addOrder(now, "10.00", 1)
	suite.Require().NoError(cancelled.Cancel(now))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), cancelled))

	query, err := queries.NewGetOpenOrdersQuery(suite.store.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetOpenOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(open.ID(), result[0].ID)
	suite.Equal(order.Requested, result[0].Status)
	suite.Equal("120.00", result[0].Total.StringFixed(2))
	suite.Equal(confirmed.ID(), result[1].ID)
	suite.Equal(order.Pending, result[1].Status)
	suite.Equal("180.00", result[1].Total.StringFixed(2))
}

func (suite *QueriesTestSuite) TestGetOpenOrders_UnknownStore_ReturnsEmptySlice() {
	query, err := queries.NewGetOpenOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := queries.NewGetOpenOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesTestSuite) TestListCustomerOverrides() {
	discount, err := pricing.NewDiscountPercent(decimal.NewFromInt(10))
	suite.Require().NoError(err)
	fixed, err := pricing.NewFixedPrice(decimal.RequireFromString("20"))
	suite.Require().NoError(err)
	suite.addOverride(suite.rice, discount)
	suite.addOverride(suite.flour, fixed)

	query, err := queries.NewListCustomerOverridesQuery(suite.customer.ID())
	suite.Require().NoError(err)

	result, err := queries.NewListCustomerOverridesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byProduct := make(map[kernel.UUID]queries.ListCustomerOverridesQueryResponse, len(result))
	for _, r := range result {
		byProduct[r.ProductID] = r
	}
	suite.Equal(pricing.RuleDiscountPercent, byProduct[suite.rice.ID()].Kind)
	suite.True(decimal.NewFromInt(10).Equal(byProduct[suite.rice.ID()].Value))
	suite.Equal(pricing.RuleFixedPrice, byProduct[suite.flour.ID()].Kind)
	suite.True(decimal.NewFromInt(20).Equal(byProduct[suite.flour.ID()].Value))
}

func (suite *QueriesTestSuite) TestListCustomerOverrides_NoneReturnsEmptySlice() {
	query, err := queries.NewListCustomerOverridesQuery(suite.customer.ID())
	suite.Require().NoError(err)

	result, err := queries.NewListCustomerOverridesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesTestSuite) TestHandle_ContextCancelled_ReturnsError() {
	query, err := queries.NewGetOpenOrdersQuery(suite.store.ID())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewGetOpenOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().Error(err)
	suite.Nil(result)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
