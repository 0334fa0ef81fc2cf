package queries

import (
	"context"
)

// GetOrderStatusQueryHandler returns errs.ObjectNotFoundError for an unknown order.
type GetOrderStatusQueryHandler struct {
	orders OrderReader
}

func NewGetOrderStatusQueryHandler(orders OrderReader) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders}
}

func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (GetOrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusResponse{}, err
	}

	o, err := h.orders.GetByIDWithItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusResponse{}, err
	}

	return GetOrderStatusResponse{
		OrderID:   o.ID(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}, nil
}
