package features

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type pricingTestContext struct {
	basePrice   decimal.Decimal
	costPercent decimal.Decimal
	rule        pricing.Rule
	quote       pricing.Quote
	err         error
}

func (c *pricingTestContext) reset() {
	*c = pricingTestContext{}
}

func (c *pricingTestContext) aProductWithBasePrice(price string) error {
	var err error
	c.basePrice, err = decimal.NewFromString(price)
	return err
}

func (c *pricingTestContext) aStoreOperationCostOfPercent(pct string) error {
	var err error
	c.costPercent, err = decimal.NewFromString(pct)
	return err
}

func (c *pricingTestContext) noOverrideForTheCustomer() error {
	c.rule = nil
	return nil
}

func (c *pricingTestContext) aFixedPriceOverrideOf(price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.rule, err = pricing.NewFixedPrice(p)
	return err
}

func (c *pricingTestContext) aDiscountOverrideOfPercent(pct string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	c.rule, err = pricing.NewDiscountPercent(p)
	return err
}

func (c *pricingTestContext) iResolveTheUnitPrice() error {
	c.quote, c.err = pricing.Resolve(c.basePrice, c.costPercent, c.rule, pricing.DefaultPrecision)
	return nil
}

func (c *pricingTestContext) theUnitPriceIs(expected string) error {
	if c.err != nil {
		return fmt.Errorf("expected a price but got error: %v", c.err)
	}
	if got := c.quote.UnitPrice.StringFixed(pricing.DefaultPrecision); got != expected {
		return fmt.Errorf("expected unit price %s, got %s", expected, got)
	}
	return nil
}

func (c *pricingTestContext) theMarkedUpPriceIs(expected string) error {
	if got := c.quote.Breakdown.MarkedUpPrice.StringFixed(pricing.DefaultPrecision); got != expected {
		return fmt.Errorf("expected marked up price %s, got %s", expected, got)
	}
	return nil
}

func (c *pricingTestContext) noOverrideWasApplied() error {
	if c.quote.Breakdown.OverrideApplied {
		return errors.New("expected no override to be applied")
	}
	return nil
}

func (c *pricingTestContext) resolutionFailsWithInvalidPricingInput() error {
	if !errors.Is(c.err, pricing.ErrInvalidPricingInput) {
		return fmt.Errorf("expected invalid pricing input, got %v", c.err)
	}
	return nil
}

type orderTestContext struct {
	order *order.Order
	clock time.Time
	err   error
}

func (c *orderTestContext) reset() {
	*c = orderTestContext{clock: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)}
}

func (c *orderTestContext) tick() time.Time {
	c.clock = c.clock.Add(time.Minute)
	return c.clock
}

func (c *orderTestContext) anOrderWithUnitsAtAndUnitAt(q1 int, p1 string, q2 int, p2 string) error {
	first, err := order.NewLineItem(kernel.NewUUID(), q1, decimal.RequireFromString(p1))
	if err != nil {
		return err
	}
	second, err := order.NewLineItem(kernel.NewUUID(), q2, decimal.RequireFromString(p2))
	if err != nil {
		return err
	}
	c.order, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{first, second}, c.tick())
	return err
}

func (c *orderTestContext) iAdvanceTheOrderTo(name string) error {
	target, err := order.ParseStatus(name)
	if err != nil {
		return err
	}
	c.err = c.order.AdvanceTo(target, c.tick())
	return nil
}

func (c *orderTestContext) iCancelTheOrder() error {
	c.err = c.order.Cancel(c.tick())
	return nil
}

func (c *orderTestContext) theOrderStatusIs(name string) error {
	if got := c.order.Status().String(); got != name {
		return fmt.Errorf("expected status %s, got %s", name, got)
	}
	return nil
}

func (c *orderTestContext) theOrderTotalIs(expected string) error {
	if got := c.order.Total().StringFixed(2); got != expected {
		return fmt.Errorf("expected total %s, got %s", expected, got)
	}
	return nil
}

func (c *orderTestContext) pricesAreNotLocked() error {
	if c.order.PricesLockedAt() != nil {
		return errors.New("expected prices to be unlocked")
	}
	return nil
}

func (c *orderTestContext) pricesAreLocked() error {
	if c.order.PricesLockedAt() == nil {
		return errors.New("expected prices to be locked")
	}
	return nil
}

func (c *orderTestContext) theTransitionFailsAsIllegal() error {
	if !errors.Is(c.err, order.ErrIllegalTransition) {
		return fmt.Errorf("expected illegal transition, got %v", c.err)
	}
	return nil
}

func (c *orderTestContext) theHistoryHasEntries(n int) error {
	if got := len(c.order.History()); got != n {
		return fmt.Errorf("expected %d history entries, got %d", n, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	pc := &pricingTestContext{}
	oc := &orderTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		oc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a product with base price "([^"]*)"$`, pc.aProductWithBasePrice)
	ctx.Step(`^a store operation cost of "([^"]*)" percent$`, pc.aStoreOperationCostOfPercent)
	ctx.Step(`^no override for the customer$`, pc.noOverrideForTheCustomer)
	ctx.Step(`^a fixed price override of "([^"]*)"$`, pc.aFixedPriceOverrideOf)
	ctx.Step(`^a discount override of "([^"]*)" percent$`, pc.aDiscountOverrideOfPercent)
	ctx.Step(`^an order with (\d+) units at "([^"]*)" and (\d+) unit at "([^"]*)"$`, oc.anOrderWithUnitsAtAndUnitAt)

	// When steps
	ctx.Step(`^I resolve the unit price$`, pc.iResolveTheUnitPrice)
	ctx.Step(`^I advance the order to "([^"]*)"$`, oc.iAdvanceTheOrderTo)
	ctx.Step(`^I cancel the order$`, oc.iCancelTheOrder)

	// Then steps
	ctx.Step(`^the unit price is "([^"]*)"$`, pc.theUnitPriceIs)
	ctx.Step(`^the marked up price is "([^"]*)"$`, pc.theMarkedUpPriceIs)
	ctx.Step(`^no override was applied$`, pc.noOverrideWasApplied)
	ctx.Step(`^resolution fails with invalid pricing input$`, pc.resolutionFailsWithInvalidPricingInput)
	ctx.Step(`^the order status is "([^"]*)"$`, oc.theOrderStatusIs)
	ctx.Step(`^the order total is "([^"]*)"$`, oc.theOrderTotalIs)
	ctx.Step(`^prices are not locked$`, oc.pricesAreNotLocked)
	ctx.Step(`^prices are locked$`, oc.pricesAreLocked)
	ctx.Step(`^the transition fails as illegal$`, oc.theTransitionFailsAsIllegal)
	ctx.Step(`^the history has (\d+) entries$`, oc.theHistoryHasEntries)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"pricing.feature", "order_lifecycle.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
