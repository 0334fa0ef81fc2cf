package notifier

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// LogNotifier writes events to the structured log. It is the default when no broker
// is configured and never fails.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) OnStatusChanged(ctx context.Context, o *order.Order, previous order.Status) error {
	n.log(ctx, NewStatusChangedEvent(o, previous))
	return nil
}

func (n *LogNotifier) OnReadyForPickup(ctx context.Context, o *order.Order) error {
	n.log(ctx, NewReadyForPickupEvent(o))
	return nil
}

func (n *LogNotifier) log(ctx context.Context, event OrderEvent) {
	attrs := []any{
		"event_id", event.EventID,
		"type", event.Type,
		"order_id", event.OrderID,
		"status", event.Status,
		"total_price", event.TotalPrice,
	}
	if event.PreviousStatus != "" {
		attrs = append(attrs, "previous_status", event.PreviousStatus)
	}
	if event.CustomerID != nil {
		attrs = append(attrs, "customer_id", *event.CustomerID)
	}
	n.logger.InfoContext(ctx, "Order event", attrs...)
}
