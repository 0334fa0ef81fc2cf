package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CreateOrderResult is the projection returned after an order was placed.
type CreateOrderResult struct {
	ID         kernel.UUID
	CustomerID *kernel.UUID
	Status     order.Status
	TotalPrice kernel.Money
	Items      []CreateOrderItemResult
	CreatedAt  time.Time
}

// CreateOrderItemResult describes one placed line with its subtotal.
type CreateOrderItemResult struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}

// CreateOrderCommandHandler builds a Pending order from the requested lines and stores it.
// No notification is sent for new orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(result.ID, result.TotalPrice)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates every line, creates the aggregate and persists it in one transaction.
// All line errors are reported together.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		item, err := order.NewItem(line.ProductID, line.ProductName, line.UnitPrice, line.Quantity)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), items)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Create(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return newCreateOrderResult(aggregate), nil
}

func newCreateOrderResult(aggregate *order.Order) CreateOrderResult {
	items := aggregate.Items()
	result := CreateOrderResult{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status(),
		TotalPrice: aggregate.TotalPrice(),
		Items:      make([]CreateOrderItemResult, 0, len(items)),
		CreatedAt:  aggregate.CreatedAt(),
	}
	for _, item := range items {
		result.Items = append(result.Items, CreateOrderItemResult{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}
	return result
}
