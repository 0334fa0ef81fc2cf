package commands

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand asks to move an order to the status named by an external
// caller. The name is parsed by the handler, so unknown names fail there.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  string

	expected      order.Status
	changedBefore time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand requires a valid order id and a non-blank status name.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status name as received.
func (c UpdateOrderStatusCommand) Status() string {
	return c.status
}

// WithPrecondition returns a copy that applies only while the stored order is still in
// expected and was last changed before changedBefore. A zero changedBefore skips the
// age check. The check runs on the order loaded inside the transaction.
func (c UpdateOrderStatusCommand) WithPrecondition(expected order.Status, changedBefore time.Time) UpdateOrderStatusCommand {
	c.expected = expected
	c.changedBefore = changedBefore
	return c
}

// checkPrecondition returns errs.InvalidStateError when o no longer matches the
// precondition set by WithPrecondition.
func (c UpdateOrderStatusCommand) checkPrecondition(o *order.Order) error {
	operation := "change status to " + c.status
	if c.expected != order.Unknown && o.Status() != c.expected {
		return errs.NewInvalidStateError(operation, o.Status().String())
	}
	if !c.changedBefore.IsZero() && !lastChangedAt(o).Before(c.changedBefore) {
		return errs.NewInvalidStateError(operation, "recently changed "+o.Status().String())
	}
	return nil
}

// lastChangedAt is UpdatedAt, or CreatedAt for an order never changed.
func lastChangedAt(o *order.Order) time.Time {
	if updatedAt := o.UpdatedAt(); updatedAt != nil {
		return *updatedAt
	}
	return o.CreatedAt()
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	c.status = status
	return nil
}
