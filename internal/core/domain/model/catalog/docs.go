// Package catalog models the read side of a distributor's storefront that
// pricing depends on: stores with their operation-cost markup and currency
// precision, the products they sell, and the customers they serve.
//
// Catalog data is owned by the surrounding application; this package only
// validates it and exposes the operation-cost change, which applies to future
// quotes and never to prices already locked on orders.
package catalog
