//go:build unit || e2e

package builder

import (
	"time"

	"pickup-rsvp/internal/domain/reservation"
	reqdto "pickup-rsvp/internal/handler/dto/request"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	Code           string
	GameID         string
	Name           string
	Email          string
	Phone          string
	Guests         []string
	WaiverAccepted bool
	IP             string
	Language       string
	UnitPrice      int64
	Currency       string
	SessionID      string
	PaymentIntent  string
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Code:           "PKP-7KQ2MZXA",
		GameID:         "2030-06-14-riverside",
		Name:           "Alex Morgan",
		Email:          "alex@example.com",
		Phone:          "+1 555 0100",
		Guests:         []string{},
		WaiverAccepted: true,
		IP:             "203.0.113.7",
		Language:       "en",
		UnitPrice:      1000,
		Currency:       "usd",
		SessionID:      "cs_test_123",
		PaymentIntent:  "pi_test_123",
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDraft() (reservation.Draft, error) {
	contact, err := reservation.NewContact(b.Name, b.Email, b.Phone)
	if err != nil {
		return reservation.Draft{}, err
	}
	guests, err := reservation.NewGuests(b.Guests)
	if err != nil {
		return reservation.Draft{}, err
	}
	waiver, err := reservation.NewWaiver(b.WaiverAccepted, b.CreatedAt, b.IP)
	if err != nil {
		return reservation.Draft{}, err
	}
	return reservation.Draft{
		GameID:   b.GameID,
		Contact:  contact,
		Guests:   guests,
		Waiver:   waiver,
		Language: reservation.NewLanguage(b.Language),
	}, nil
}

func (b *ReservationBuilder) BuildCash() (*reservation.Reservation, error) {
	draft, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	return reservation.NewCashReservation(reservation.ReconstructCode(b.Code), draft, b.UnitPrice, b.Currency, b.CreatedAt), nil
}

func (b *ReservationBuilder) BuildOnline() (*reservation.Reservation, error) {
	draft, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	refs := reservation.PaymentRefs{SessionID: b.SessionID, PaymentIntentID: b.PaymentIntent}
	return reservation.NewOnlineReservation(reservation.ReconstructCode(b.Code), draft, b.UnitPrice, b.Currency, refs, b.CreatedAt), nil
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	total := int32(1 + len(b.Guests))
	return sqlc.Reservations{
		ConfirmationCode: b.Code,
		GameID:           b.GameID,
		HolderName:       b.Name,
		HolderEmail:      b.Email,
		HolderPhone:      b.Phone,
		GuestNames:       b.Guests,
		TotalPlayers:     total,
		UnitPriceCents:   b.UnitPrice,
		TotalAmountCents: b.UnitPrice * int64(total),
		Currency:         b.Currency,
		PaymentMethod:    reservation.PaymentCash.String(),
		PaymentStatus:    reservation.PaymentPending.String(),
		Status:           reservation.StatusConfirmed.String(),
		WaiverAcceptedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		WaiverIp:         b.IP,
		Language:         b.Language,
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Guests:         b.Guests,
		WaiverAccepted: b.WaiverAccepted,
		Language:       b.Language,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	total := 1 + len(b.Guests)
	return &queries.ReservationView{
		ConfirmationCode: b.Code,
		GameID:           b.GameID,
		HolderName:       b.Name,
		Guests:           b.Guests,
		TotalPlayers:     total,
		TotalAmount:      b.UnitPrice * int64(total),
		Currency:         b.Currency,
		PaymentMethod:    reservation.PaymentCash.String(),
		PaymentStatus:    reservation.PaymentPending.String(),
		Status:           reservation.StatusConfirmed.String(),
		CreatedAt:        b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithCode(code string) *ReservationBuilder {
	b.Code = code
	return b
}

func (b *ReservationBuilder) WithGameID(gameID string) *ReservationBuilder {
	b.GameID = gameID
	return b
}

func (b *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	b.Email = email
	return b
}

func (b *ReservationBuilder) WithGuests(names ...string) *ReservationBuilder {
	b.Guests = names
	return b
}

func (b *ReservationBuilder) WithLanguage(lang string) *ReservationBuilder {
	b.Language = lang
	return b
}

func (b *ReservationBuilder) WithoutWaiver() *ReservationBuilder {
	b.WaiverAccepted = false
	return b
}
