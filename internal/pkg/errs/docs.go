// Package errs provides standardized error types for the laundry application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value or precondition field is missing
//   - ValueIsInvalidError: for when a value or state is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - NotAuthorizedError: for ownership mismatches between actor and resource
//   - UpdateConflictError: for guarded writes that affected zero rows
//   - PaymentGatewayError: for failures of the external payment gateway
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Core operations surface these errors unmodified; the HTTP layer maps them
// to status codes at the boundary.
package errs
