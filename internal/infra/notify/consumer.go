package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	consumerPrefetch = 20
	maxBackoff       = 30 * time.Second
)

// Consumer drains the notification queue into a sink. Messages the sink
// rejects are dropped rather than requeued so one bad payload cannot loop.
type Consumer struct {
	url   string
	queue string
	sink  commands.NotificationSink
	dial  func(url string) (*amqp.Connection, error)
}

func NewConsumer(url, queue string, sink commands.NotificationSink) *Consumer {
	return &Consumer{url: url, queue: queue, sink: sink, dial: amqp.Dial}
}

// Run reconnects with exponential backoff until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		err := c.consumeOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		slog.Warn("notification consumer disconnected", "error", err, "retry_in", backoff.String())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (c *Consumer) consumeOnce(ctx context.Context) error {
	conn, err := c.dial(c.url)
	if err != nil {
		return errs.Wrap(err, "dial broker")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		return errs.Wrap(err, "set qos")
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume")
	}
	slog.Info("notification consumer started", "queue", c.queue)

	for d := range deliveries {
		c.handle(ctx, d)
	}
	return errs.New("delivery channel closed")
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	if err := c.deliver(ctx, d.Body); err != nil {
		slog.Error("notification dropped", "type", d.Type, "error", err.Error())
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func (c *Consumer) deliver(ctx context.Context, body []byte) error {
	var n commands.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return errs.Wrap(err, "decode notification")
	}
	return c.sink.Send(ctx, n)
}
