package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends envelopes to a durable queue named after the event type.
// The connection is kept open and redialled when the broker drops it.
type AMQPPublisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url}
	if _, err := p.connection(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) connection() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	p.conn = conn
	return conn, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, e Envelope) error {
	conn, err := p.connection()
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(e.EventType, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: declare %s: %w", e.EventType, err)
	}

	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, "", e.EventType, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     e.EventID,
		CorrelationId: e.CorrelationID,
		Timestamp:     e.OccurredAt,
		Type:          e.EventType,
		Body:          body,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
