package errs

import "errors"

// IsValidation reports whether err (or anything it wraps or joins) belongs to the
// caller-correctable input family: required, invalid or out of range.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsConflict reports whether err is a lifecycle violation: a forbidden status
// transition or an operation not permitted in the current state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrInvalidState)
}
