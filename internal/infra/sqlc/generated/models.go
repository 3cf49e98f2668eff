package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Games struct {
	GameID          string             `json:"game_id"`
	StartsAt        pgtype.Timestamptz `json:"starts_at"`
	DurationMinutes int32              `json:"duration_minutes"`
	Venue           string             `json:"venue"`
	Address         string             `json:"address"`
	PriceCents      int64              `json:"price_cents"`
	Currency        string             `json:"currency"`
	Capacity        int32              `json:"capacity"`
	SpotsRemaining  int32              `json:"spots_remaining"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type Operators struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type PaymentEvents struct {
	EventID          string             `json:"event_id"`
	EventType        string             `json:"event_type"`
	SessionID        string             `json:"session_id"`
	ConfirmationCode string             `json:"confirmation_code"`
	Outcome          string             `json:"outcome"`
	ReceivedAt       pgtype.Timestamptz `json:"received_at"`
}

type Reservations struct {
	ConfirmationCode      string             `json:"confirmation_code"`
	GameID                string             `json:"game_id"`
	HolderName            string             `json:"holder_name"`
	HolderEmail           string             `json:"holder_email"`
	HolderPhone           string             `json:"holder_phone"`
	GuestNames            []string           `json:"guest_names"`
	TotalPlayers          int32              `json:"total_players"`
	UnitPriceCents        int64              `json:"unit_price_cents"`
	TotalAmountCents      int64              `json:"total_amount_cents"`
	Currency              string             `json:"currency"`
	PaymentMethod         string             `json:"payment_method"`
	PaymentStatus         string             `json:"payment_status"`
	Status                string             `json:"status"`
	WaiverAcceptedAt      pgtype.Timestamptz `json:"waiver_accepted_at"`
	WaiverIp              string             `json:"waiver_ip"`
	Language              string             `json:"language"`
	StripeSessionID       pgtype.Text        `json:"stripe_session_id"`
	StripePaymentIntentID pgtype.Text        `json:"stripe_payment_intent_id"`
	RefundID              pgtype.Text        `json:"refund_id"`
	RefundEligible        pgtype.Bool        `json:"refund_eligible"`
	CancelledAt           pgtype.Timestamptz `json:"cancelled_at"`
	CreatedAt             pgtype.Timestamptz `json:"created_at"`
	UpdatedAt             pgtype.Timestamptz `json:"updated_at"`
}

type WaitlistEntries struct {
	ID         uuid.UUID          `json:"id"`
	Seq        int64              `json:"seq"`
	GameID     string             `json:"game_id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Language   string             `json:"language"`
	Notified   bool               `json:"notified"`
	NotifiedAt pgtype.Timestamptz `json:"notified_at"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
