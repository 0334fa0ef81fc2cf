// Package queries contains read-only operations over orders.
// Query handlers never open a unit of work and never change state.
package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// OrderReader is the read side of ports.OrderRepository used by the query handlers.
type OrderReader interface {
	GetByIDWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error)
	ListPaged(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, int64, error)
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}

// OrderDetail is the full projection of an order, items included.
type OrderDetail struct {
	ID                  kernel.UUID
	CustomerID          *kernel.UUID
	Status              order.Status
	TotalPrice          kernel.Money
	QRCode              string
	PaymentPreferenceID string
	Items               []OrderItemDetail
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// OrderItemDetail is one line of an OrderDetail.
type OrderItemDetail struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}

// OrderSummary is the list projection of an order.
// CustomerName is nil while no customer directory is wired in.
type OrderSummary struct {
	ID           kernel.UUID
	CustomerID   *kernel.UUID
	CustomerName *string
	TotalPrice   kernel.Money
	Status       order.Status
	ItemCount    int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func newOrderDetail(o *order.Order) OrderDetail {
	items := o.Items()
	details := make([]OrderItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, OrderItemDetail{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}

	return OrderDetail{
		ID:                  o.ID(),
		CustomerID:          o.CustomerID(),
		Status:              o.Status(),
		TotalPrice:          o.TotalPrice(),
		QRCode:              o.QRCode(),
		PaymentPreferenceID: o.PaymentPreferenceID(),
		Items:               details,
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
}

func newOrderSummary(o *order.Order) OrderSummary {
	return OrderSummary{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		TotalPrice: o.TotalPrice(),
		Status:     o.Status(),
		ItemCount:  o.ItemCount(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}
