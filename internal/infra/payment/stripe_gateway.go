package payment

import (
	"context"
	"errors"
	"log/slog"

	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/refund"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

// StripeGateway creates Checkout Sessions, verifies their webhooks and issues refunds.
type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret is required")
	}

	stripe.Key = cfg.SecretKey

	return &StripeGateway{webhookSecret: cfg.WebhookSecret}, nil
}

func (g *StripeGateway) CreateSession(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(int64(req.Quantity)),
			},
		},
		Metadata: req.Metadata,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"confirmation_code": req.Metadata["confirmation_code"]},
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}

	return &commands.CheckoutSession{
		SessionID:   sess.ID,
		RedirectURL: sess.URL,
	}, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (*commands.PaymentEvent, error) {
	return verifyEvent(payload, signatureHeader, g.webhookSecret)
}

// IssueRefund refunds the full payment. The idempotency key makes a retried
// call return the original refund instead of a second one.
func (g *StripeGateway) IssueRefund(ctx context.Context, paymentIntentID string) (string, error) {
	if paymentIntentID == "" {
		return "", errors.New("payment intent id is required")
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx
	params.SetIdempotencyKey("refund-" + paymentIntentID)

	r, err := refund.New(params)
	if err != nil {
		return "", errs.Wrap(err, "create refund")
	}

	slog.Info("stripe refund created", "refund_id", r.ID, "status", string(r.Status))
	return r.ID, nil
}
