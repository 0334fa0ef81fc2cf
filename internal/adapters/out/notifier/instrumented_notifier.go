package notifier

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedNotifier counts every event passed to the wrapped notifier by type and
// outcome ("sent" or "failed"). Errors are returned unchanged.
type InstrumentedNotifier struct {
	next   ports.OrderNotifier
	events *prometheus.CounterVec
}

// NewInstrumentedNotifier wraps next. events must have the labels type and outcome.
func NewInstrumentedNotifier(next ports.OrderNotifier, events *prometheus.CounterVec) *InstrumentedNotifier {
	return &InstrumentedNotifier{next: next, events: events}
}

func (n *InstrumentedNotifier) OnStatusChanged(ctx context.Context, o *order.Order, previous order.Status) error {
	err := n.next.OnStatusChanged(ctx, o, previous)
	n.observe(EventStatusChanged, err)
	return err
}

func (n *InstrumentedNotifier) OnReadyForPickup(ctx context.Context, o *order.Order) error {
	err := n.next.OnReadyForPickup(ctx, o)
	n.observe(EventReadyForPickup, err)
	return err
}

func (n *InstrumentedNotifier) observe(eventType string, err error) {
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	n.events.WithLabelValues(eventType, outcome).Inc()
}
