package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrExpireAwaitingPaymentCommandIsNotConstructed = errors.New(
		"ExpireAwaitingPaymentCommand must be created via NewExpireAwaitingPaymentCommand constructor",
	)
)

// ExpireAwaitingPaymentCommand cancels orders that have been waiting for payment since
// before the cut-off. The last change time (UpdatedAt, else CreatedAt) is compared.
type ExpireAwaitingPaymentCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireAwaitingPaymentCommand requires a non-zero cut-off.
func NewExpireAwaitingPaymentCommand(cutoff time.Time) (ExpireAwaitingPaymentCommand, error) {
	if cutoff.IsZero() {
		return ExpireAwaitingPaymentCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ExpireAwaitingPaymentCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireAwaitingPaymentCommand) Validate() error {
	return c.guard.Validate(ErrExpireAwaitingPaymentCommandIsNotConstructed)
}

func (c ExpireAwaitingPaymentCommand) Cutoff() time.Time {
	return c.cutoff
}
