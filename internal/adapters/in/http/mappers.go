package http

import (
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toKernelID(paramName string, id uuid.UUID) (kernel.UUID, error) {
	kernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return kernelID, nil
}

func parseDecimal(paramName, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return d, nil
}

// ruleFromBody builds the override rule from whichever of the two fields is
// set. The request validator has already checked that exactly one is.
func ruleFromBody(fixedPrice, discountPercent *string) (pricing.Rule, error) {
	if fixedPrice != nil {
		price, err := parseDecimal("fixedPrice", *fixedPrice)
		if err != nil {
			return nil, err
		}
		rule, err := pricing.NewFixedPrice(price)
		if err != nil {
			return nil, err
		}
		return rule, nil
	}
	if discountPercent != nil {
		percent, err := parseDecimal("discountPercent", *discountPercent)
		if err != nil {
			return nil, err
		}
		rule, err := pricing.NewDiscountPercent(percent)
		if err != nil {
			return nil, err
		}
		return rule, nil
	}
	return nil, errs.NewValueIsRequiredError("rule")
}

func money(d decimal.Decimal, precision int32) servers.Decimal {
	return d.StringFixed(precision)
}

func toPriceQuote(resp queries.QuotePriceQueryResponse) servers.PriceQuote {
	b := resp.Breakdown
	breakdown := servers.PriceBreakdown{
		BasePrice:            b.BasePrice.String(),
		OperationCostPercent: b.OperationCostPercent.String(),
		MarkupAmount:         money(b.MarkupAmount, resp.Precision),
		MarkedUpPrice:        money(b.MarkedUpPrice, resp.Precision),
		OverrideKind:         servers.RuleKind(b.OverrideKind),
		OverrideApplied:      b.OverrideApplied,
		FinalPrice:           money(b.FinalPrice, resp.Precision),
	}
	if b.OverrideApplied {
		value := b.OverrideValue.String()
		breakdown.OverrideValue = &value
	}

	return servers.PriceQuote{
		StoreId:    resp.StoreID.Bytes(),
		CustomerId: resp.CustomerID.Bytes(),
		ProductId:  resp.ProductID.Bytes(),
		UnitPrice:  money(resp.UnitPrice, resp.Precision),
		Breakdown:  breakdown,
	}
}

func toOrder(resp queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice, resp.Precision),
			Subtotal:  money(item.Subtotal, resp.Precision),
		}
	}

	history := make([]servers.StatusHistoryEntry, len(resp.StatusHistory))
	for i, change := range resp.StatusHistory {
		history[i] = servers.StatusHistoryEntry{
			Status: servers.OrderStatus(change.Status.String()),
			At:     change.At,
		}
	}

	return servers.Order{
		Id:             resp.ID.Bytes(),
		StoreId:        resp.StoreID.Bytes(),
		CustomerId:     resp.CustomerID.Bytes(),
		Status:         servers.OrderStatus(resp.Status.String()),
		Items:          items,
		Total:          money(resp.Total, resp.Precision),
		CreatedAt:      resp.CreatedAt,
		PricesLockedAt: resp.PricesLockedAt,
		StatusHistory:  history,
	}
}

func toOrderSummary(resp queries.GetOpenOrdersQueryResponse) servers.OrderSummary {
	return servers.OrderSummary{
		Id:         resp.ID.Bytes(),
		CustomerId: resp.CustomerID.Bytes(),
		Status:     servers.OrderStatus(resp.Status.String()),
		Total:      money(resp.Total, resp.Precision),
		CreatedAt:  resp.CreatedAt,
	}
}

func toOverride(resp queries.ListCustomerOverridesQueryResponse) servers.Override {
	return servers.Override{
		ProductId: resp.ProductID.Bytes(),
		Kind:      servers.RuleKind(resp.Kind),
		Value:     resp.Value.String(),
		UpdatedAt: resp.UpdatedAt,
	}
}
