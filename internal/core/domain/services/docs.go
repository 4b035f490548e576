// Package services provides domain services that coordinate several aggregates
// of the storefront domain. It holds business workflows that do not belong to a
// single aggregate root.
//
// The package includes:
//   - OrderPlacer: prices a cart for a customer and creates the Requested order
//
// Domain services are stateless; callers load the aggregates they need and
// persist the results.
package services
