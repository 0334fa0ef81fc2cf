package queries

import (
	"context"
)

type CustomerHasOrdersQueryHandler struct {
	orders OrderReader
}

func NewCustomerHasOrdersQueryHandler(orders OrderReader) CustomerHasOrdersQueryHandler {
	return CustomerHasOrdersQueryHandler{orders: orders}
}

func (h CustomerHasOrdersQueryHandler) Handle(ctx context.Context, query CustomerHasOrdersQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	return h.orders.ExistsForCustomer(ctx, query.CustomerID())
}
