package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports an operation attempted while the object is in a state
// that does not permit it.
type InvalidStateError struct {
	Operation string
	State     string
}

func NewInvalidStateError(operation, state string) *InvalidStateError {
	return &InvalidStateError{
		Operation: operation,
		State:     state,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s while in %s", ErrInvalidState, e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
