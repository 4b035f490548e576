// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell values built by their constructor apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its
// constructor. The zero value is "not constructed".
//
// Example:
//
//	var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote")
//
//	type Quote struct {
//	    price decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
