// Package notifier implements ports.OrderNotifier.
//
// Every implementation publishes the same JSON OrderEvent. LogNotifier writes it to
// slog, KafkaNotifier to a topic keyed by order id, RabbitMQNotifier to a topic
// exchange routed by event type. InstrumentedNotifier wraps any of them with
// Prometheus counters.
package notifier

import (
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const (
	EventStatusChanged  = "order.status_changed"
	EventReadyForPickup = "order.ready_for_pickup"
)

// OrderEvent is the wire format of every notification.
type OrderEvent struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	CustomerID     *string   `json:"customerId,omitempty"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Status         string    `json:"status"`
	TotalPrice     string    `json:"totalPrice"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func newEvent(eventType string, o *order.Order) OrderEvent {
	var customerID *string
	if id := o.CustomerID(); id != nil {
		s := id.String()
		customerID = &s
	}

	occurredAt := o.CreatedAt()
	if updatedAt := o.UpdatedAt(); updatedAt != nil {
		occurredAt = *updatedAt
	}

	return OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    o.ID().String(),
		CustomerID: customerID,
		Status:     o.Status().String(),
		TotalPrice: o.TotalPrice().String(),
		OccurredAt: occurredAt,
	}
}

// NewStatusChangedEvent describes a committed move from previous to the order's
// current status.
func NewStatusChangedEvent(o *order.Order, previous order.Status) OrderEvent {
	event := newEvent(EventStatusChanged, o)
	event.PreviousStatus = previous.String()
	return event
}

// NewReadyForPickupEvent describes an order that just became Ready.
func NewReadyForPickupEvent(o *order.Order) OrderEvent {
	return newEvent(EventReadyForPickup, o)
}

func (e OrderEvent) marshal() ([]byte, error) {
	return json.Marshal(e)
}
