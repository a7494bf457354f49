// Package errs provides the standardized error types used across the application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the failing parameter and an optional cause
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// Keeping the taxonomy small and uniform makes failures classifiable at the
// HTTP boundary without string matching.
package errs
