// Package errs provides standardized error types for the kitchen service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain, the application layer and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid, including rejected state transitions
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - VersionConflictError: an aggregate was modified by a concurrent request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the kind
package errs
