package game

import (
	"regexp"
	"strings"
	"time"
)

const (
	MaxIDLength    = 64
	MaxVenueLength = 200
	MaxCapacity    = 200
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-]*$`)

// ID is the human-assigned game identifier, e.g. "2025-06-14-riverside".
type ID struct {
	value string
}

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxIDLength || !idPattern.MatchString(s) {
		return ID{}, ErrInvalidID
	}
	return ID{value: s}, nil
}

func ReconstructID(s string) ID { return ID{value: s} }

func (id ID) String() string { return id.value }

type Schedule struct {
	startsAt time.Time
	duration time.Duration
	venue    string
	address  string
}

func NewSchedule(startsAt time.Time, duration time.Duration, venue, address string) (Schedule, error) {
	if startsAt.IsZero() {
		return Schedule{}, ErrInvalidSchedule
	}
	if duration <= 0 {
		return Schedule{}, ErrInvalidSchedule
	}
	venue = strings.TrimSpace(venue)
	if venue == "" || len(venue) > MaxVenueLength {
		return Schedule{}, ErrInvalidVenue
	}
	return Schedule{
		startsAt: startsAt,
		duration: duration,
		venue:    venue,
		address:  strings.TrimSpace(address),
	}, nil
}

func ReconstructSchedule(startsAt time.Time, duration time.Duration, venue, address string) Schedule {
	return Schedule{startsAt: startsAt, duration: duration, venue: venue, address: address}
}

func (s Schedule) StartsAt() time.Time           { return s.startsAt }
func (s Schedule) EndsAt() time.Time             { return s.startsAt.Add(s.duration) }
func (s Schedule) Duration() time.Duration       { return s.duration }
func (s Schedule) Venue() string                 { return s.venue }
func (s Schedule) Address() string               { return s.address }
func (s Schedule) DayOfWeek() time.Weekday       { return s.startsAt.Weekday() }
func (s Schedule) Date() string                  { return s.startsAt.Format(time.DateOnly) }
func (s Schedule) TimeOfDay() string             { return s.startsAt.Format("15:04") }
func (s Schedule) HasStarted(now time.Time) bool { return !now.Before(s.startsAt) }

// Price is a per-player price in minor currency units.
type Price struct {
	amountCents int64
	currency    string
}

func NewPrice(amountCents int64, currency string) (Price, error) {
	if amountCents < 0 {
		return Price{}, ErrNegativePrice
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Price{}, ErrInvalidCurrency
	}
	return Price{amountCents: amountCents, currency: currency}, nil
}

func ReconstructPrice(amountCents int64, currency string) Price {
	return Price{amountCents: amountCents, currency: currency}
}

func (p Price) AmountCents() int64 { return p.amountCents }
func (p Price) Currency() string   { return p.currency }

func (p Price) Times(n int) int64 {
	return p.amountCents * int64(n)
}
