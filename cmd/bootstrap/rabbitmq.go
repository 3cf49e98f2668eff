package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"pickup-rsvp/internal/infra/notify"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewNotificationSink,
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

// NewNotificationSink publishes to RabbitMQ when RABBITMQ_URL is set and
// logs notifications otherwise.
func NewNotificationSink(lc fx.Lifecycle, cfg config.Config) (commands.NotificationSink, error) {
	if !cfg.RabbitMQ.Enabled() {
		slog.Info("rabbitmq disabled, notifications are logged only")
		return notify.NewLogSink(), nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	publisher, err := notify.NewAMQPPublisher(conn, cfg.RabbitMQ.Queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = publisher.Close()
			return conn.Close()
		},
	})

	return publisher, nil
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config, sink commands.NotificationSink) *notify.Dispatcher {
	d := notify.NewDispatcher(sink, cfg.Booking.NotificationTimeout)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			d.Wait()
			return nil
		},
	})
	return d
}
