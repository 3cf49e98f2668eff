package payment

import (
	"encoding/json"

	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// verifyEvent authenticates a webhook payload against the endpoint secret and
// extracts the checkout session it carries.
func verifyEvent(payload []byte, signatureHeader, secret string) (*commands.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(err, commands.ErrSignature)
	}

	out := &commands.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripe.EventTypeCheckoutSessionExpired:
	default:
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, errs.Wrap(err, "decode checkout session")
	}

	out.SessionID = session.ID
	out.Metadata = session.Metadata
	out.Paid = session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	if session.PaymentIntent != nil {
		out.PaymentIntentID = session.PaymentIntent.ID
	}
	// Delayed payment methods complete later; treat their success like a completion.
	if event.Type == stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded {
		out.Type = commands.EventCheckoutCompleted
	}
	return out, nil
}
