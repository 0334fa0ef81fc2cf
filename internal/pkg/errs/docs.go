// Package errs provides the error taxonomy shared by the ordering service.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: caller-correctable
//     input errors (the validation family, see IsValidation)
//   - ObjectNotFoundError: a referenced aggregate does not exist
//   - InvalidTransitionError: a status change the order lifecycle forbids
//   - InvalidStateError: an operation attempted in a state that does not permit it
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through wrapping and errors.Join
//
// Anything that is not one of these types is treated as an unexpected collaborator failure.
package errs
