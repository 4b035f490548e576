// Package errs provides standardized error types for the storefront service.
// Each error type wraps a sentinel so callers can classify failures with
// errors.Is while still reading the offending parameter from the typed value.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a persisted object does not exist
//   - ObjectAlreadyExistsError: a persisted object would be duplicated
//   - ConcurrencyConflictError: a write was based on a stale version
//
// Every type follows the same shape: a sentinel variable, a struct with the
// details, constructors with and without a cause, Error() and Unwrap().
package errs
