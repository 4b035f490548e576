package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a status change is not one of the
// lifecycle's edges. The wrapping IllegalTransitionError names both ends.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status is the lifecycle state of an order. The numeric values are the
// persisted status codes.
//
// State transitions:
//
//	Requested ──> Pending ──> Processing ──> Shipped ──> PI ──> Completed
//	    │            │            │             │         │
//	    └────────────┴────────────┴─────────────┴─────────┴──> Cancelled
//
// The forward path is strictly linear; Cancelled is reachable from every open
// state. Completed and Cancelled are terminal.
type Status int

const (
	// Requested is the initial status: a customer or operator submitted a cart.
	Requested Status = iota

	// Pending means the operator confirmed the order and its prices are locked.
	Pending

	// Processing means fulfillment has begun.
	Processing

	// Shipped means the goods were dispatched.
	Shipped

	// PI is the proforma/invoice billing gate every order passes before completion.
	PI

	// Completed means the invoice was settled. Terminal.
	Completed

	// Cancelled closes an order without fulfilling it. Terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Requested:  "REQUESTED",
	Pending:    "PENDING",
	Processing: "PROCESSING",
	Shipped:    "SHIPPED",
	PI:         "PI",
	Completed:  "COMPLETED",
	Cancelled:  "CANCELLED",
}

// transitions is the lifecycle adjacency map. A status absent from a list is
// unreachable from the key in a single step.
var transitions = map[Status][]Status{
	Requested:  {Pending, Cancelled},
	Pending:    {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {PI, Cancelled},
	PI:         {Completed, Cancelled},
	Completed:  {},
	Cancelled:  {},
}

// AllStatuses lists every status in code order.
func AllStatuses() []Status {
	return []Status{Requested, Pending, Processing, Shipped, PI, Completed, Cancelled}
}

// ParseStatus converts a status name such as "PENDING" (case-insensitive) into a Status.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for status, statusName := range statusNames {
		if statusName == normalized {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects codes outside the seven known statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the status name, or "UNKNOWN" for invalid codes.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Targets returns the statuses reachable from s in one step.
func (s Status) Targets() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is one edge away from s. Re-requesting
// the current status is never a legal transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition describes an accepted status change.
type Transition struct {
	From Status
	To   Status

	// LocksPrices is set on the Requested -> Pending edge, where the order's
	// line-item prices become final.
	LocksPrices bool
}

// TransitionTo validates a move from s to target without applying it.
//
// Example:
//
//	t, err := order.Requested.TransitionTo(order.Pending)
//	// t.LocksPrices == true
//
//	_, err = order.Requested.TransitionTo(order.Shipped)
//	// errors.Is(err, order.ErrIllegalTransition)
func (s Status) TransitionTo(target Status) (Transition, error) {
	if err := target.Validate(); err != nil {
		return Transition{}, err
	}
	if !s.CanTransitionTo(target) {
		return Transition{}, &IllegalTransitionError{From: s, To: target}
	}
	return Transition{
		From:        s,
		To:          target,
		LocksPrices: s == Requested && target == Pending,
	}, nil
}

// IllegalTransitionError names the rejected edge.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	switch {
	case e.From.IsTerminal():
		return fmt.Sprintf("%s: %s is terminal, cannot move to %s", ErrIllegalTransition, e.From, e.To)
	case e.From == e.To:
		return fmt.Sprintf("%s: order is already %s", ErrIllegalTransition, e.From)
	default:
		return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
	}
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
