package commands

import (
	"context"

	"pickup-rsvp/internal/pkg/errs"
)

// ErrSignature is returned by VerifyWebhook for payloads that cannot be
// authenticated. Nothing about such a payload is trusted.
var ErrSignature = errs.New("webhook signature verification failed")

const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

type CheckoutRequest struct {
	ProductName   string
	UnitAmount    int64
	Currency      string
	Quantity      int
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// PaymentEvent is a webhook delivery that passed signature verification.
type PaymentEvent struct {
	ID              string
	Type            string
	SessionID       string
	PaymentIntentID string
	Paid            bool
	Metadata        map[string]string
}

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock
type PaymentGateway interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	VerifyWebhook(payload []byte, signatureHeader string) (*PaymentEvent, error)
	IssueRefund(ctx context.Context, paymentIntentID string) (string, error)
}

type NotificationKind string

const (
	NotifyReservationConfirmed NotificationKind = "reservation_confirmed"
	NotifyReservationCancelled NotificationKind = "reservation_cancelled"
	NotifyWaitlistSpotOpened   NotificationKind = "waitlist_spot_opened"
	NotifyOperatorRefundAlert  NotificationKind = "operator_refund_alert"
)

type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Recipient string           `json:"recipient"`
	Language  string           `json:"language"`
	Data      map[string]any   `json:"data"`
}

// NotificationSink delivers a single message. Implementations may block.
type NotificationSink interface {
	Send(ctx context.Context, n Notification) error
}

// Notifier hands notifications off without waiting for delivery. It must be
// called only after the booking transaction has committed.
type Notifier interface {
	Dispatch(ctx context.Context, notifications ...Notification)
}

// GameCacheInvalidator drops cached game views after a capacity or detail change.
type GameCacheInvalidator interface {
	Invalidate(ctx context.Context, gameIDs ...string)
}
