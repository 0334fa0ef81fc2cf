package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> AwaitingPayment ──> Paid ──> Processing ──> Ready ──> Completed
//	          ├──> Paid                          │    │
//	          ├──> Processing <──────────────────┘    │ (back to Pending)
//	          └──> Cancelled <── AwaitingPayment, Processing
//
// Completed and Cancelled are terminal. Moving to the current status is always allowed.
type Status int

const (
	// Unknown (0) catches uninitialized Status values and is never valid.
	Unknown Status = iota

	// Pending is the initial status; items can only be changed here.
	Pending

	// AwaitingPayment means a payment flow was started and the order waits for it.
	AwaitingPayment

	// Paid means payment was confirmed.
	Paid

	// Processing means the kitchen is preparing the order.
	Processing

	// Ready means the order can be picked up by the customer.
	Ready

	// Completed means the order was handed over. Terminal.
	Completed

	// Cancelled means the order will not be fulfilled. Terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:         "Pending",
	AwaitingPayment: "AwaitingPayment",
	Paid:            "Paid",
	Processing:      "Processing",
	Ready:           "Ready",
	Completed:       "Completed",
	Cancelled:       "Cancelled",
}

// transitions lists, for every status, the statuses it may move to. Same-status
// moves are handled separately and are not listed here.
var transitions = map[Status][]Status{
	Pending:         {Processing, Cancelled, AwaitingPayment, Paid},
	Processing:      {Ready, Cancelled, Pending},
	Ready:           {Completed},
	AwaitingPayment: {Paid, Cancelled},
	Paid:            {Processing},
	Completed:       {},
	Cancelled:       {},
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, AwaitingPayment, Paid, Processing, Ready, Completed, Cancelled}
}

// ParseStatus converts an external status name into a Status. Matching ignores case
// and surrounding whitespace. Numeric strings and unknown names are rejected.
//
// Example:
//
//	s, err := order.ParseStatus("awaitingpayment") // AwaitingPayment, nil
//	_, err = order.ParseStatus("Shipped")           // value is invalid: status (...)
func ParseStatus(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	for s, n := range statusNames {
		if strings.EqualFold(n, trimmed) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", trimmed),
	)
}

// Validate checks that s is one of the seven lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name used in persistence, events and the HTTP API.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no other status can follow s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// A move to the same valid status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is allowed, otherwise an
// errs.InvalidTransitionError naming both statuses.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
