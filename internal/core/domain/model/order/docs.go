// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding priced line items, status and history
//   - LineItem: a product, a positive quantity and its locked unit price
//   - Status: the seven-state lifecycle with an explicit transition table
//
// Key business rules:
//   - Orders start Requested and move forward one step at a time:
//     Requested -> Pending -> Processing -> Shipped -> PI -> Completed
//   - Any open order may be cancelled; Completed and Cancelled are terminal
//   - Skipping a step, re-requesting the current status or leaving a terminal
//     status fails with ErrIllegalTransition and changes nothing
//   - Unit prices are snapshotted at creation; confirming (Requested -> Pending)
//     stamps the price lock
package order
