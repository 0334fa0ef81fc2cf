package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
)

// AddOrderItemCommand appends one line to a Pending order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	line    OrderLine

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand requires a valid order id. Line fields are checked when the
// item is built.
func NewAddOrderItemCommand(orderID kernel.UUID, line OrderLine) (AddOrderItemCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID: orderID,
		line:    line,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) Line() OrderLine {
	return c.line
}
