package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher puts notifications on a durable RabbitMQ queue for the
// notifier worker to deliver. A single channel is shared and reopened if
// the broker closes it.
type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string

	mu sync.Mutex
	ch *amqp.Channel
}

func NewAMQPPublisher(conn *amqp.Connection, queue string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{conn: conn, queue: queue}
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) Send(ctx context.Context, n commands.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(n.Kind),
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "publish notification")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}
	return p.ch.Close()
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "open amqp channel")
	}
	if err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		return nil, err
	}
	p.ch = ch
	return ch, nil
}

func declareQueue(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "declare notification queue")
	}
	return nil
}
