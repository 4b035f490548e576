// Package kernel holds domain primitives shared by every aggregate of the
// storefront: currently the UUID value object used to identify stores,
// customers, products and orders.
package kernel
