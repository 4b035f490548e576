package queries

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order, its line items in placement order and
// its status history oldest first.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var (
		storeID, customerID uuid.UUID
		status              int
		createdAt           time.Time
		pricesLockedAt      sql.NullTime
		precision           int32
	)
	err := db.Raw(`
		SELECT
			o.store_id,
			o.customer_id,
			o.status,
			o.created_at,
			o.prices_locked_at,
			COALESCE(s.currency_precision, ?)
		FROM orders o
		LEFT JOIN stores s ON s.id = o.store_id
		WHERE o.id = ?
	`, pricing.DefaultPrecision, orderID).Row().Scan(&storeID, &customerID, &status, &createdAt, &pricesLockedAt, &precision)
	if err != nil {
		return GetOrderQueryResponse{}, notFoundOr(err, "order", query.OrderID())
	}

	resp := GetOrderQueryResponse{
		ID:        query.OrderID(),
		Status:    order.Status(status),
		CreatedAt: createdAt,
		Total:     decimal.Zero,
		Precision: precision,
	}
	if resp.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if pricesLockedAt.Valid {
		lockedAt := pricesLockedAt.Time
		resp.PricesLockedAt = &lockedAt
	}

	if resp.Items, err = h.items(db, orderID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	for _, item := range resp.Items {
		resp.Total = resp.Total.Add(item.Subtotal)
	}

	if resp.StatusHistory, err = h.history(db, orderID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID uuid.UUID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT product_id, quantity, unit_price
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			item      OrderItemView
		)
		if err = rows.Scan(&productID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) history(db *gorm.DB, orderID uuid.UUID) ([]StatusChangeView, error) {
	rows, err := db.Raw(`
		SELECT status, at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY seq
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeView, 0)
	for rows.Next() {
		var (
			status int
			change StatusChangeView
		)
		if err = rows.Scan(&status, &change.At); err != nil {
			return nil, err
		}
		change.Status = order.Status(status)
		history = append(history, change)
	}

	return history, rows.Err()
}
