//go:build unit

package payment_test

import (
	"context"
	"testing"

	"pickup-rsvp/internal/infra/payment"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/commands"
	"pickup-rsvp/tests/common/paymenttest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "whsec_unit"

func TestMockGatewaySessions(t *testing.T) {
	g := payment.NewMockGateway(secret)
	req := commands.CheckoutRequest{
		ProductName:   "Pickup soccer",
		UnitAmount:    1000,
		Currency:      "usd",
		Quantity:      3,
		CustomerEmail: "alex@example.com",
		Metadata:      map[string]string{"game_id": "2030-06-14-riverside"},
	}

	session, err := g.CreateSession(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, session.SessionID, "cs_test_")
	assert.Contains(t, session.RedirectURL, session.SessionID)

	got, ok := g.Session(session.SessionID)
	require.True(t, ok)
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	_, ok = g.Session("cs_unknown")
	assert.False(t, ok)
}

func TestMockGatewayRefunds(t *testing.T) {
	g := payment.NewMockGateway(secret)

	first, err := g.IssueRefund(context.Background(), "pi_1")
	require.NoError(t, err)
	again, err := g.IssueRefund(context.Background(), "pi_1")
	require.NoError(t, err)
	other, err := g.IssueRefund(context.Background(), "pi_2")
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.Equal(t, 2, g.RefundCount())
}

func TestVerifyWebhook(t *testing.T) {
	g := payment.NewMockGateway(secret)
	meta := map[string]string{"game_id": "2030-06-14-riverside", "confirmation_code": "PKP-7KQ2MZXA"}

	t.Run("completed checkout", func(t *testing.T) {
		payload, header := paymenttest.SignedPayload(t, secret, paymenttest.CheckoutEvent{
			EventID:         "evt_1",
			SessionID:       "cs_test_1",
			PaymentIntentID: "pi_1",
			Metadata:        meta,
		})

		ev, err := g.VerifyWebhook(payload, header)
		require.NoError(t, err)

		want := &commands.PaymentEvent{
			ID:              "evt_1",
			Type:            commands.EventCheckoutCompleted,
			SessionID:       "cs_test_1",
			PaymentIntentID: "pi_1",
			Paid:            true,
			Metadata:        meta,
		}
		if diff := cmp.Diff(want, ev); diff != "" {
			t.Errorf("event mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("async success is treated as completion", func(t *testing.T) {
		payload, header := paymenttest.SignedPayload(t, secret, paymenttest.CheckoutEvent{
			EventID:   "evt_2",
			Type:      "checkout.session.async_payment_succeeded",
			SessionID: "cs_test_2",
			Metadata:  meta,
		})

		ev, err := g.VerifyWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, commands.EventCheckoutCompleted, ev.Type)
		assert.True(t, ev.Paid)
	})

	t.Run("unpaid session", func(t *testing.T) {
		payload, header := paymenttest.SignedPayload(t, secret, paymenttest.CheckoutEvent{
			EventID:       "evt_3",
			SessionID:     "cs_test_3",
			PaymentStatus: "unpaid",
		})

		ev, err := g.VerifyWebhook(payload, header)
		require.NoError(t, err)
		assert.False(t, ev.Paid)
	})

	t.Run("unrelated event type carries no session", func(t *testing.T) {
		payload, header := paymenttest.SignedPayload(t, secret, paymenttest.CheckoutEvent{
			EventID:   "evt_4",
			Type:      "customer.created",
			SessionID: "cus_1",
		})

		ev, err := g.VerifyWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "customer.created", ev.Type)
		assert.Empty(t, ev.SessionID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		payload, header := paymenttest.SignedPayload(t, "whsec_other", paymenttest.CheckoutEvent{EventID: "evt_5", SessionID: "cs_test_5"})

		_, err := g.VerifyWebhook(payload, header)
		assert.True(t, errs.Is(err, commands.ErrSignature), "got %v", err)
	})

	t.Run("tampered body", func(t *testing.T) {
		payload, header := paymenttest.SignedPayload(t, secret, paymenttest.CheckoutEvent{EventID: "evt_6", SessionID: "cs_test_6"})
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = ' '

		_, err := g.VerifyWebhook(tampered, header)
		assert.True(t, errs.Is(err, commands.ErrSignature), "got %v", err)
	})

	t.Run("missing header", func(t *testing.T) {
		payload, _ := paymenttest.SignedPayload(t, secret, paymenttest.CheckoutEvent{EventID: "evt_7", SessionID: "cs_test_7"})

		_, err := g.VerifyWebhook(payload, "")
		assert.True(t, errs.Is(err, commands.ErrSignature), "got %v", err)
	})
}
