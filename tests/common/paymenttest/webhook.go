//go:build unit || e2e

package paymenttest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

// CheckoutEvent describes a checkout.session.* delivery to sign.
type CheckoutEvent struct {
	EventID         string
	Type            string
	SessionID       string
	PaymentIntentID string
	PaymentStatus   string
	Metadata        map[string]string
}

// SignedPayload renders the event as the provider would send it and returns
// the body together with a valid signature header for secret.
func SignedPayload(t *testing.T, secret string, ev CheckoutEvent) ([]byte, string) {
	t.Helper()

	if ev.Type == "" {
		ev.Type = "checkout.session.completed"
	}
	if ev.PaymentStatus == "" {
		ev.PaymentStatus = "paid"
	}

	session := map[string]any{
		"id":             ev.SessionID,
		"object":         "checkout.session",
		"payment_status": ev.PaymentStatus,
		"metadata":       ev.Metadata,
	}
	if ev.PaymentIntentID != "" {
		session["payment_intent"] = ev.PaymentIntentID
	}

	payload, err := json.Marshal(map[string]any{
		"id":          ev.EventID,
		"object":      "event",
		"type":        ev.Type,
		"api_version": "2025-01-01",
		"created":     time.Now().Unix(),
		"data":        map[string]any{"object": session},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return payload, signed.Header
}
