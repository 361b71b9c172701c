// Package broadcast pushes live order events to staff displays over a
// RabbitMQ fanout exchange. Delivery is best-effort: events are not
// persisted and listeners that connect later never see earlier events.
package broadcast

import (
	"context"
	"encoding/json"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the fanout exchange every staff display binds to.
const ExchangeName = "order_events"

// Event names carried in the envelope.
const (
	EventNewOrder     = "newOrder"
	EventOrderUpdated = "orderUpdated"
)

// Envelope is the JSON message published for every event.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// AMQPNotifier publishes order events to the fanout exchange.
type AMQPNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel

	mu sync.Mutex // amqp channels are not safe for concurrent publish
}

// Connect dials RabbitMQ and declares the fanout exchange.
func Connect(url string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(ExchangeName, "fanout", false, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQPNotifier{conn: conn, ch: ch}, nil
}

// Broadcast publishes an event envelope to all currently connected
// listeners. Messages are transient; there is no replay.
func (n *AMQPNotifier) Broadcast(ctx context.Context, event string, payload any) error {
	body, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	return n.ch.PublishWithContext(ctx, ExchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (n *AMQPNotifier) Close() {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}
