package queries

import (
	"time"

	"github.com/google/uuid"
)

// GameView is the public catalog shape of a game. It is also what the
// catalog cache stores, so every field carries a json tag.
type GameView struct {
	GameID          string    `json:"game_id"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DayOfWeek       string    `json:"day_of_week"`
	DurationMinutes int       `json:"duration_minutes"`
	Venue           string    `json:"venue"`
	Address         string    `json:"address"`
	PriceCents      int64     `json:"price_cents"`
	Currency        string    `json:"currency"`
	Capacity        int       `json:"capacity"`
	SpotsRemaining  int       `json:"spots_remaining"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReservationView is what a holder sees when looking up their own booking.
type ReservationView struct {
	ConfirmationCode string     `json:"confirmation_code"`
	GameID           string     `json:"game_id"`
	HolderName       string     `json:"holder_name"`
	Guests           []string   `json:"guests"`
	TotalPlayers     int        `json:"total_players"`
	TotalAmount      int64      `json:"total_amount"`
	Currency         string     `json:"currency"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentStatus    string     `json:"payment_status"`
	Status           string     `json:"status"`
	RefundEligible   *bool      `json:"refund_eligible,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	Game             *GameView  `json:"game,omitempty"`
}

type RosterReservation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	HolderName       string    `json:"holder_name"`
	HolderEmail      string    `json:"holder_email"`
	HolderPhone      string    `json:"holder_phone"`
	Guests           []string  `json:"guests"`
	TotalPlayers     int       `json:"total_players"`
	TotalAmount      int64     `json:"total_amount"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentStatus    string    `json:"payment_status"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type RosterWaitlistEntry struct {
	Position   int        `json:"position"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Notified   bool       `json:"notified"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RosterView lists the live reservations of a game followed by its waitlist
// in promotion order.
type RosterView struct {
	Game         GameView              `json:"game"`
	Reservations []RosterReservation   `json:"reservations"`
	LivePlayers  int                   `json:"live_players"`
	PaidPlayers  int                   `json:"paid_players"`
	CashPlayers  int                   `json:"cash_players"`
	Waitlist     []RosterWaitlistEntry `json:"waitlist"`
}

type OperatorView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
