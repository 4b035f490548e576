// Package pricing resolves the unit price a customer pays for a product.
//
// The effective price is derived in two layers:
//   - the store's operation-cost percentage marks the product's base price up
//   - an optional customer override then either replaces the marked-up price
//     (FixedPrice) or discounts it (DiscountPercent)
//
// The result is rounded half-up to the store's currency precision and returned
// together with a Breakdown that explains every step for audit and display.
//
// Key business rules:
//   - Base price and operation-cost percentage must be non-negative
//   - A fixed-price override ignores the markup entirely
//   - A discount percentage must lie in [0, 100]
//   - At most one override exists per (customer, product) pair
//
// Resolve is a pure function: it reads nothing and writes nothing, so prices
// can be quoted while browsing and snapshotted onto order line items with the
// same code path.
package pricing
