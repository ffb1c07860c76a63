// Package errs provides standardized error types for the procurement application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//
// Domain error kinds surfaced to callers of the use-case layer:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - BusinessRuleError: a domain rule was violated (carries a stable code)
//   - InvalidStateTransitionError: an order status change not permitted by the
//     transition table
//
// Validation errors used by constructors and value objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its allowed range
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The presentation layer classifies errors exclusively through errors.Is
// against the sentinels; it never inspects message strings.
package errs
