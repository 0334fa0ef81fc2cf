package queries

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"
)

// GetOrderByIDQueryHandler reads a single order. A missing order is reported through
// Found rather than as an error; any other repository failure is returned.
type GetOrderByIDQueryHandler struct {
	orders OrderReader
}

func NewGetOrderByIDQueryHandler(orders OrderReader) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orders: orders}
}

func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (GetOrderByIDResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDResponse{}, err
	}

	o, err := h.orders.GetByIDWithItems(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetOrderByIDResponse{Found: false}, nil
	}
	if err != nil {
		return GetOrderByIDResponse{}, err
	}

	return GetOrderByIDResponse{
		Found: true,
		Order: newOrderDetail(o),
	}, nil
}
