package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyOrder is returned when an order would have no line items.
	ErrEmptyOrder = errors.New("order must have at least one line item")

	// ErrOrderIsNotConstructed is returned for orders not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// HistoryEntry records that the order entered Status at At.
type HistoryEntry struct {
	Status Status
	At     time.Time
}

// Order is the aggregate root for a customer's purchase from a store.
//
// Order follows these invariants:
//   - Has at least one line item, each with a positive quantity
//   - Line-item unit prices are fixed at creation and never recomputed
//   - Status changes only along the lifecycle edges defined by Status
//   - Every accepted status change is appended to the history with its time
//   - Is never deleted; Cancelled is a terminal status
//
// version is the persisted revision the aggregate was loaded at and is used
// by repositories for optimistic concurrency.
type Order struct {
	id             kernel.UUID
	storeID        kernel.UUID
	customerID     kernel.UUID
	items          []LineItem
	status         Status
	history        []HistoryEntry
	createdAt      time.Time
	pricesLockedAt *time.Time
	version        int

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Requested status from already priced line items.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, 2, decimal.RequireFromString("50.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), storeID, customerID, []order.LineItem{item}, time.Now())
//	if errors.Is(err, order.ErrEmptyOrder) {
//	    // nothing to order
//	}
func NewOrder(id, storeID, customerID kernel.UUID, items []LineItem, now time.Time) (*Order, error) {
	o := &Order{
		status:    Requested,
		createdAt: now,
		history:   []HistoryEntry{{Status: Requested, At: now}},
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIdentity(id, storeID, customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of an order into RestoreOrder.
type Snapshot struct {
	ID             kernel.UUID
	StoreID        kernel.UUID
	CustomerID     kernel.UUID
	Items          []LineItem
	Status         Status
	History        []HistoryEntry
	CreatedAt      time.Time
	PricesLockedAt *time.Time
	Version        int
}

// RestoreOrder rebuilds an order from persistence. The history must start with
// Requested and end with the current status.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt: s.CreatedAt,
		version:   s.Version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIdentity(s.ID, s.StoreID, s.CustomerID),
		o.setItems(s.Items),
		o.setStatusAndHistory(s.Status, s.History),
	); err != nil {
		return nil, err
	}

	if s.PricesLockedAt != nil {
		at := *s.PricesLockedAt
		o.pricesLockedAt = &at
	}

	return o, nil
}

// Validate ensures the order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line items in order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	return slices.Clone(o.history)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PricesLockedAt returns when the order was confirmed and its prices became
// final, or nil while it is still Requested.
func (o *Order) PricesLockedAt() *time.Time {
	if o.pricesLockedAt == nil {
		return nil
	}
	at := *o.pricesLockedAt
	return &at
}

func (o *Order) Version() int {
	return o.version
}

// MarkSaved advances the version after a repository persisted the order.
func (o *Order) MarkSaved() {
	o.version++
}

// Total is the sum of the line-item subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AdvanceTo moves the order to target if the lifecycle allows it. On error the
// order is left untouched.
//
// Moving from Requested to Pending stamps the price lock.
func (o *Order) AdvanceTo(target Status, at time.Time) error {
	transition, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = transition.To
	o.history = append(o.history, HistoryEntry{Status: transition.To, At: at})
	if transition.LocksPrices && o.pricesLockedAt == nil {
		lockedAt := at
		o.pricesLockedAt = &lockedAt
	}
	return nil
}

// Cancel moves any open order to Cancelled. Terminal orders fail with
// ErrIllegalTransition.
func (o *Order) Cancel(at time.Time) error {
	return o.AdvanceTo(Cancelled, at)
}

func (o *Order) setIdentity(id, storeID, customerID kernel.UUID) error {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := storeID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("storeId", err))
	}
	if err := customerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	o.id = id
	o.storeID = storeID
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatusAndHistory(status Status, history []HistoryEntry) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if len(history) == 0 || history[0].Status != Requested {
		return errs.NewValueIsInvalidErrorWithCause("statusHistory", errors.New("history must start with REQUESTED"))
	}
	if last := history[len(history)-1].Status; last != status {
		return errs.NewValueIsInvalidErrorWithCause(
			"statusHistory",
			fmt.Errorf("history ends with %s but status is %s", last, status),
		)
	}
	o.status = status
	o.history = slices.Clone(history)
	return nil
}
