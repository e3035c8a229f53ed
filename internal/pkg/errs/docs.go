// Package errs provides standardized error types for the delivery estimation
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value fails validation
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the message
//   - Unwrap() method returning the sentinel, so callers can classify
//     errors with errors.Is
//
// The HTTP adapter relies on the sentinels to map internal errors onto
// response codes: ErrValueIsInvalid becomes a 400 and ErrObjectNotFound
// becomes a 404.
package errs
