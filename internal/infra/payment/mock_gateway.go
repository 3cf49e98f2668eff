package payment

import (
	"context"
	"sync"

	"pickup-rsvp/internal/usecase/commands"

	"github.com/google/uuid"
)

// MockGateway stands in for Stripe in local runs and tests. Sessions and
// refunds are fabricated in memory; webhooks are verified with the same
// signature scheme as the real gateway so test payloads exercise that path.
type MockGateway struct {
	webhookSecret string

	mu       sync.Mutex
	sessions map[string]commands.CheckoutRequest
	refunds  map[string]string
}

func NewMockGateway(webhookSecret string) *MockGateway {
	return &MockGateway{
		webhookSecret: webhookSecret,
		sessions:      make(map[string]commands.CheckoutRequest),
		refunds:       make(map[string]string),
	}
}

func (g *MockGateway) CreateSession(_ context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	id := "cs_test_" + uuid.NewString()

	g.mu.Lock()
	g.sessions[id] = req
	g.mu.Unlock()

	return &commands.CheckoutSession{
		SessionID:   id,
		RedirectURL: "https://checkout.stripe.test/pay/" + id,
	}, nil
}

func (g *MockGateway) VerifyWebhook(payload []byte, signatureHeader string) (*commands.PaymentEvent, error) {
	return verifyEvent(payload, signatureHeader, g.webhookSecret)
}

func (g *MockGateway) IssueRefund(_ context.Context, paymentIntentID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.refunds[paymentIntentID]; ok {
		return id, nil
	}
	id := "re_test_" + uuid.NewString()
	g.refunds[paymentIntentID] = id
	return id, nil
}

// Session returns what a created session was asked to charge.
func (g *MockGateway) Session(sessionID string) (commands.CheckoutRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	req, ok := g.sessions[sessionID]
	return req, ok
}

// RefundCount reports how many distinct payments were refunded.
func (g *MockGateway) RefundCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.refunds)
}
