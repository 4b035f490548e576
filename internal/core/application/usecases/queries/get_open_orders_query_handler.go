package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler lists open orders of a store with their totals.
// An unknown store simply has no open orders.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.created_at,
			COALESCE(SUM(li.quantity * li.unit_price), 0) AS total,
			COALESCE(s.currency_precision, ?) AS currency_precision
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		LEFT JOIN stores s ON s.id = o.store_id
		WHERE o.store_id = ? AND o.status NOT IN (?, ?)
		GROUP BY o.id, o.customer_id, o.status, o.created_at, s.currency_precision
		ORDER BY o.created_at, o.id
	`, pricing.DefaultPrecision, query.StoreID().Bytes(), int(order.Completed), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOpenOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, customerID uuid.UUID
			status         int
			resp           GetOpenOrdersQueryResponse
			total          decimal.Decimal
		)
		if err = rows.Scan(&id, &customerID, &status, &resp.CreatedAt, &total, &resp.Precision); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status)
		resp.Total = total
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
