package notifier

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// Publisher is the part of *amqp091.Channel the notifier uses.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQConnection owns the AMQP connection and the channel events are published on.
type RabbitMQConnection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// DialRabbitMQ connects and declares exchange as a durable topic exchange.
func DialRabbitMQ(url, exchange string) (*RabbitMQConnection, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &RabbitMQConnection{conn: conn, channel: channel}, nil
}

// Channel returns the channel to publish on.
func (c *RabbitMQConnection) Channel() *amqp091.Channel {
	return c.channel
}

func (c *RabbitMQConnection) Close() error {
	_ = c.channel.Close()
	return c.conn.Close()
}

// RabbitMQNotifier publishes persistent JSON messages with the event type as routing
// key, so consumers can bind to "order.*" or to a single event type.
type RabbitMQNotifier struct {
	publisher Publisher
	exchange  string
}

func NewRabbitMQNotifier(publisher Publisher, exchange string) *RabbitMQNotifier {
	return &RabbitMQNotifier{
		publisher: publisher,
		exchange:  exchange,
	}
}

func (n *RabbitMQNotifier) OnStatusChanged(ctx context.Context, o *order.Order, previous order.Status) error {
	return n.publish(ctx, NewStatusChangedEvent(o, previous))
}

func (n *RabbitMQNotifier) OnReadyForPickup(ctx context.Context, o *order.Order) error {
	return n.publish(ctx, NewReadyForPickupEvent(o))
}

func (n *RabbitMQNotifier) publish(ctx context.Context, event OrderEvent) error {
	body, err := event.marshal()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.publisher.PublishWithContext(
		ctx,
		n.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s to exchange %s: %w", event.Type, n.exchange, err)
	}
	return nil
}
