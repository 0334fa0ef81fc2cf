package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderFilter narrows and pages an order listing. PageNumber starts at 1.
// Nil CustomerID or Status means "any".
type OrderFilter struct {
	PageNumber int
	PageSize   int
	CustomerID *kernel.UUID
	Status     *order.Status
}

// Offset returns the number of rows to skip for the requested page.
func (f OrderFilter) Offset() int {
	if f.PageNumber < 1 {
		return 0
	}
	return (f.PageNumber - 1) * f.PageSize
}

// OrderRepository defines the persistence contract for order aggregates.
// Every call is atomic at the storage layer; commands group calls with a UnitOfWork.
type OrderRepository interface {
	// Create persists a new order together with its items.
	Create(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its item set.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByIDWithItems loads an order and all of its items.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	GetByIDWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListPaged returns one page of orders, newest first, and the total number of
	// orders matching the filter.
	ListPaged(ctx context.Context, filter OrderFilter) ([]*order.Order, int64, error)

	// ExistsForCustomer reports whether the customer has placed at least one order.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}
