package reservation

import (
	"time"

	"pickup-rsvp/internal/pkg/errs"
)

var (
	ErrInvalidEmail      = errs.New("invalid email format")
	ErrInvalidName       = errs.New("name is required (max 100 characters)")
	ErrInvalidPhone      = errs.New("phone number is too long")
	ErrTooManyGuests     = errs.New("at most 4 guests are allowed")
	ErrInvalidGuestName  = errs.New("guest names must be non-empty (max 100 characters)")
	ErrWaiverNotAccepted = errs.New("the waiver must be accepted")
	ErrAlreadyCancelled  = errs.New("reservation is already cancelled")
	ErrGameStarted       = errs.New("game has already started")
	ErrNotRefundable     = errs.New("reservation is not eligible for a refund")
	ErrAlreadyRefunded   = errs.New("reservation has already been refunded")
	ErrInvalidTransition = errs.New("invalid reservation status transition")
)

// Draft is everything a holder submits when booking. It is what checkout
// carries through the payment provider and what finalize rebuilds.
type Draft struct {
	GameID   string
	Contact  Contact
	Guests   Guests
	Waiver   Waiver
	Language Language
}

func (d Draft) TotalPlayers() int {
	return 1 + d.Guests.Count()
}

type Reservation struct {
	code           Code
	gameID         string
	contact        Contact
	guests         Guests
	totalPlayers   int
	unitPrice      int64
	totalAmount    int64
	currency       string
	paymentMethod  PaymentMethod
	paymentStatus  PaymentStatus
	status         Status
	waiver         Waiver
	language       Language
	refs           PaymentRefs
	refundEligible *bool
	cancelledAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCashReservation books a spot to be paid on the day.
func NewCashReservation(code Code, draft Draft, unitPrice int64, currency string, now time.Time) *Reservation {
	return newReservation(code, draft, unitPrice, currency, PaymentCash, PaymentPending, PaymentRefs{}, now)
}

// NewOnlineReservation books a spot whose payment the provider has already
// confirmed.
func NewOnlineReservation(code Code, draft Draft, unitPrice int64, currency string, refs PaymentRefs, now time.Time) *Reservation {
	return newReservation(code, draft, unitPrice, currency, PaymentOnline, PaymentPaid, refs, now)
}

func newReservation(
	code Code,
	draft Draft,
	unitPrice int64,
	currency string,
	method PaymentMethod,
	paymentStatus PaymentStatus,
	refs PaymentRefs,
	now time.Time,
) *Reservation {
	total := draft.TotalPlayers()
	return &Reservation{
		code:          code,
		gameID:        draft.GameID,
		contact:       draft.Contact,
		guests:        draft.Guests,
		totalPlayers:  total,
		unitPrice:     unitPrice,
		totalAmount:   unitPrice * int64(total),
		currency:      currency,
		paymentMethod: method,
		paymentStatus: paymentStatus,
		status:        StatusConfirmed,
		waiver:        draft.Waiver,
		language:      draft.Language,
		refs:          refs,
		createdAt:     now,
		updatedAt:     now,
	}
}

type Snapshot struct {
	Code           Code
	GameID         string
	Contact        Contact
	Guests         Guests
	TotalPlayers   int
	UnitPrice      int64
	TotalAmount    int64
	Currency       string
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	Status         Status
	Waiver         Waiver
	Language       Language
	Refs           PaymentRefs
	RefundEligible *bool
	CancelledAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Reservation {
	return &Reservation{
		code:           s.Code,
		gameID:         s.GameID,
		contact:        s.Contact,
		guests:         s.Guests,
		totalPlayers:   s.TotalPlayers,
		unitPrice:      s.UnitPrice,
		totalAmount:    s.TotalAmount,
		currency:       s.Currency,
		paymentMethod:  s.PaymentMethod,
		paymentStatus:  s.PaymentStatus,
		status:         s.Status,
		waiver:         s.Waiver,
		language:       s.Language,
		refs:           s.Refs,
		refundEligible: s.RefundEligible,
		cancelledAt:    s.CancelledAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (r *Reservation) Code() Code                   { return r.code }
func (r *Reservation) GameID() string               { return r.gameID }
func (r *Reservation) Contact() Contact             { return r.contact }
func (r *Reservation) Guests() Guests               { return r.guests }
func (r *Reservation) TotalPlayers() int            { return r.totalPlayers }
func (r *Reservation) UnitPrice() int64             { return r.unitPrice }
func (r *Reservation) TotalAmount() int64           { return r.totalAmount }
func (r *Reservation) Currency() string             { return r.currency }
func (r *Reservation) PaymentMethod() PaymentMethod { return r.paymentMethod }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) Waiver() Waiver               { return r.waiver }
func (r *Reservation) Language() Language           { return r.language }
func (r *Reservation) Refs() PaymentRefs            { return r.refs }
func (r *Reservation) RefundEligible() *bool        { return r.refundEligible }
func (r *Reservation) CancelledAt() *time.Time      { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// IsRefundEligible is false both for ineligible and for not-yet-evaluated
// reservations.
func (r *Reservation) IsRefundEligible() bool {
	return r.refundEligible != nil && *r.refundEligible
}

// Cancel moves the reservation to cancelled. For online payments the refund
// eligibility is computed here, once, and never recomputed.
func (r *Reservation) Cancel(now, gameStart time.Time, refundWindow time.Duration) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !now.Before(gameStart) {
		return ErrGameStarted
	}

	if r.paymentMethod == PaymentOnline && r.refundEligible == nil {
		eligible := RefundEligible(gameStart, now, refundWindow)
		r.refundEligible = &eligible
	}
	if r.paymentStatus == PaymentPending {
		r.paymentStatus = PaymentCancelled
	}

	r.status = StatusCancelled
	cancelledAt := now
	r.cancelledAt = &cancelledAt
	r.updatedAt = now
	return nil
}

// MarkRefunded records a refund an operator executed with the provider.
func (r *Reservation) MarkRefunded(refundID string, now time.Time) error {
	if err := r.CheckRefundable(); err != nil {
		return err
	}
	r.paymentStatus = PaymentRefunded
	r.refs.RefundID = refundID
	r.updatedAt = now
	return nil
}

// CheckRefundable reports whether a provider refund may be issued: only for
// paid online reservations cancelled inside the refund window.
func (r *Reservation) CheckRefundable() error {
	if r.paymentStatus == PaymentRefunded {
		return ErrAlreadyRefunded
	}
	if r.status != StatusCancelled ||
		r.paymentMethod != PaymentOnline ||
		r.paymentStatus != PaymentPaid ||
		!r.IsRefundEligible() ||
		r.refs.PaymentIntentID == "" {
		return ErrNotRefundable
	}
	return nil
}

// MarkNoShow flags a confirmed holder who did not turn up. Only possible once
// the game has started.
func (r *Reservation) MarkNoShow(now, gameStart time.Time) error {
	if r.status != StatusConfirmed || now.Before(gameStart) {
		return ErrInvalidTransition
	}
	r.status = StatusNoShow
	r.updatedAt = now
	return nil
}

// RefundEligible reports whether a cancellation at now is far enough ahead of
// gameStart to qualify for a refund.
func RefundEligible(gameStart, now time.Time, window time.Duration) bool {
	return gameStart.Sub(now) >= window
}
