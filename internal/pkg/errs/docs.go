// Package errs provides standardized error types for the order workflow.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types, grouped by the Kind a transport sees:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - NotFound: ObjectNotFoundError
//   - Conflict: ObjectIsUnavailableError, InvalidTransitionError, VersionIsInvalidError
//   - Forbidden: AccessDeniedError
//   - Persistence: PersistenceError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error produced by the workflow onto one of these kinds so that
// callers never have to render a generic, unexplained failure.
package errs
