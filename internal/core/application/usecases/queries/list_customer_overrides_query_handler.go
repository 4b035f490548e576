package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCustomerOverridesQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOverridesQueryHandler(db *gorm.DB) ListCustomerOverridesQueryHandler {
	return ListCustomerOverridesQueryHandler{db: db}
}

// Handle returns the overrides ordered by product id. A customer without
// overrides, known or not, gets an empty slice.
func (h ListCustomerOverridesQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOverridesQuery,
) ([]ListCustomerOverridesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, rule_kind, rule_value, updated_at
		FROM customer_price_overrides
		WHERE customer_id = ?
		ORDER BY product_id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make([]ListCustomerOverridesQueryResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			kind      string
			resp      ListCustomerOverridesQueryResponse
		)
		if err = rows.Scan(&productID, &kind, &resp.Value, &resp.UpdatedAt); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		resp.Kind = pricing.RuleKind(kind)
		overrides = append(overrides, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}
