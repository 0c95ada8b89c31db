// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying error details (parameter name, value, cause)
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP adapter classifies errors by sentinel to pick response status
// codes: required/invalid values map to validation failures, ErrObjectNotFound
// to missing resources, and ErrVersionIsInvalid to optimistic concurrency
// conflicts.
package errs
