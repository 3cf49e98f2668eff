package bootstrap

import (
	"log/slog"

	"pickup-rsvp/internal/infra/payment"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) (commands.PaymentGateway, error) {
	if cfg.Stripe.Mock {
		slog.Warn("using mock payment gateway")
		return payment.NewMockGateway(cfg.Stripe.WebhookSecret), nil
	}
	return payment.NewStripeGateway(payment.StripeConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
	})
}
