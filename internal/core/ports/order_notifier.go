package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderNotifier is the outbound side of status changes. Implementations deliver to
// logs, Kafka or RabbitMQ. Handlers await both calls, so a returned nil means the
// attempt finished, not that anyone consumed the message.
type OrderNotifier interface {
	// OnStatusChanged is called after a status update was committed.
	OnStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// OnReadyForPickup is called in addition to OnStatusChanged when the order became Ready.
	OnReadyForPickup(ctx context.Context, aggregate *order.Order) error
}
