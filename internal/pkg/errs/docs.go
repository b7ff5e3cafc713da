// Package errs provides standardized error types for the trading application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy surfaced by the order lifecycle:
//   - ObjectNotFoundError: an order (or other object) could not be located
//   - ObjectAlreadyExistsError: an identifier collision on creation
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input values
//   - InvalidStateError: an operation forbidden by the object's current state,
//     carrying that state for truthful reporting
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Transport adapters rely on the sentinels to map errors onto status codes,
// so every error that crosses a use-case boundary should be one of these.
package errs
