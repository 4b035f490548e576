package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuotePriceQueryHandler prices one unit of a product for a customer from the
// current store markup and the customer's override, if any.
//
// A product or customer that exists but belongs to another store is reported
// as not found in the requested store.
type QuotePriceQueryHandler struct {
	db *gorm.DB
}

func NewQuotePriceQueryHandler(db *gorm.DB) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{db: db}
}

func (h QuotePriceQueryHandler) Handle(ctx context.Context, query QuotePriceQuery) (QuotePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuotePriceQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		operationCostPercent decimal.Decimal
		precision            int32
	)
	err := db.Raw(`
		SELECT operation_cost_percent, currency_precision
		FROM stores
		WHERE id = ?
	`, query.StoreID().Bytes()).Row().Scan(&operationCostPercent, &precision)
	if err != nil {
		return QuotePriceQueryResponse{}, notFoundOr(err, "store", query.StoreID())
	}

	var (
		productStoreID uuid.UUID
		basePrice      decimal.Decimal
	)
	err = db.Raw(`
		SELECT store_id, base_price
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row().Scan(&productStoreID, &basePrice)
	if err != nil {
		return QuotePriceQueryResponse{}, notFoundOr(err, "product", query.ProductID())
	}
	if productStoreID != query.StoreID().Bytes() {
		return QuotePriceQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	var customerStoreID uuid.UUID
	err = db.Raw(`
		SELECT store_id
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row().Scan(&customerStoreID)
	if err != nil {
		return QuotePriceQueryResponse{}, notFoundOr(err, "customer", query.CustomerID())
	}
	if customerStoreID != query.StoreID().Bytes() {
		return QuotePriceQueryResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	rule, err := h.overrideRule(db, query)
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	quote, err := pricing.Resolve(basePrice, operationCostPercent, rule, precision)
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	return QuotePriceQueryResponse{
		StoreID:    query.StoreID(),
		CustomerID: query.CustomerID(),
		ProductID:  query.ProductID(),
		UnitPrice:  quote.UnitPrice,
		Breakdown:  quote.Breakdown,
		Precision:  precision,
	}, nil
}

func (h QuotePriceQueryHandler) overrideRule(db *gorm.DB, query QuotePriceQuery) (pricing.Rule, error) {
	var (
		kind  string
		value decimal.Decimal
	)
	err := db.Raw(`
		SELECT rule_kind, rule_value
		FROM customer_price_overrides
		WHERE customer_id = ? AND product_id = ?
	`, query.CustomerID().Bytes(), query.ProductID().Bytes()).Row().Scan(&kind, &value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pricing.RuleFromParts(pricing.RuleKind(kind), value)
}

// notFoundOr turns a missing row into errs.ObjectNotFoundError and passes
// other errors through.
func notFoundOr(err error, paramName string, id kernel.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}
