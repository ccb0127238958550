// Package errs provides standardized error types for the printflow
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value lies outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Business refusals that carry domain meaning (a timeline boundary, a
// missing challan type) are package-level sentinel errors in the domain
// packages instead; errs covers the generic validation vocabulary.
package errs
