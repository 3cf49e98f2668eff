// Command notifier drains the notification queue the API publishes to and
// hands each message to the delivery sink.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pickup-rsvp/cmd/bootstrap"
	"pickup-rsvp/internal/infra/notify"
	"pickup-rsvp/internal/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg)

	if !cfg.RabbitMQ.Enabled() {
		logger.Error("RABBITMQ_URL is required for the notifier")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := notify.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, notify.NewLogSink())
	logger.Info("notifier started", "queue", cfg.RabbitMQ.Queue)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("notifier stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("notifier stopped")
}
