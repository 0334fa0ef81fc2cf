package queries

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// ListOrdersQueryHandler reads a page of orders.
//
// A repository failure is logged and reported through ListOrdersResponse.Failed with a
// nil error, so callers can tell "no orders" apart from "could not read orders"
// without treating the listing as fatal.
type ListOrdersQueryHandler struct {
	orders OrderReader
	logger *slog.Logger
}

func NewListOrdersQueryHandler(orders OrderReader, logger *slog.Logger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orders: orders,
		logger: logger.With("component", "list_orders_handler"),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	response := ListOrdersResponse{
		Items:      make([]OrderSummary, 0),
		PageNumber: query.PageNumber(),
		PageSize:   query.PageSize(),
	}

	orders, total, err := h.orders.ListPaged(ctx, ports.OrderFilter{
		PageNumber: query.PageNumber(),
		PageSize:   query.PageSize(),
		CustomerID: query.CustomerID(),
		Status:     query.Status(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list orders",
			"page_number", query.PageNumber(),
			"page_size", query.PageSize(),
			"error", err,
		)
		response.Failed = true
		return response, nil
	}

	for _, o := range orders {
		response.Items = append(response.Items, newOrderSummary(o))
	}
	response.TotalCount = total
	response.TotalPages = int((total + int64(query.PageSize()) - 1) / int64(query.PageSize()))

	return response, nil
}
