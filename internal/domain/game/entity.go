package game

import (
	"time"

	"pickup-rsvp/internal/pkg/errs"
)

var (
	ErrInvalidID           = errs.New("invalid game id")
	ErrInvalidSchedule     = errs.New("invalid game schedule")
	ErrInvalidVenue        = errs.New("invalid venue")
	ErrNegativePrice       = errs.New("price cannot be negative")
	ErrInvalidCurrency     = errs.New("invalid currency")
	ErrInvalidCapacity     = errs.New("capacity must be between 1 and 200")
	ErrInvalidStatus       = errs.New("invalid game status")
	ErrCapacityBelowBooked = errs.New("capacity cannot be lower than the number of booked players")
	ErrGameClosed          = errs.New("game is not accepting bookings")
	ErrGameStarted         = errs.New("game has already started")
)

type Game struct {
	id             ID
	schedule       Schedule
	price          Price
	capacity       int
	spotsRemaining int
	status         Status
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewGame(id ID, schedule Schedule, price Price, capacity int, notes string, now time.Time) (*Game, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Game{
		id:             id,
		schedule:       schedule,
		price:          price,
		capacity:       capacity,
		spotsRemaining: capacity,
		status:         StatusOpen,
		notes:          notes,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructGame(
	id ID,
	schedule Schedule,
	price Price,
	capacity, spotsRemaining int,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Game {
	return &Game{
		id:             id,
		schedule:       schedule,
		price:          price,
		capacity:       capacity,
		spotsRemaining: spotsRemaining,
		status:         status,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (g *Game) ID() ID                { return g.id }
func (g *Game) Schedule() Schedule    { return g.schedule }
func (g *Game) Price() Price          { return g.price }
func (g *Game) Capacity() int         { return g.capacity }
func (g *Game) SpotsRemaining() int   { return g.spotsRemaining }
func (g *Game) Status() Status        { return g.status }
func (g *Game) Notes() string         { return g.notes }
func (g *Game) CreatedAt() time.Time  { return g.createdAt }
func (g *Game) UpdatedAt() time.Time  { return g.updatedAt }
func (g *Game) BookedPlayers() int    { return g.capacity - g.spotsRemaining }
func (g *Game) StartsAt() time.Time   { return g.schedule.StartsAt() }
func (g *Game) IsFull() bool          { return g.spotsRemaining <= 0 }
func (g *Game) HasRoomFor(n int) bool { return n > 0 && n <= g.spotsRemaining }

// CheckBookable rejects games that are closed or already under way.
func (g *Game) CheckBookable(now time.Time) error {
	if g.status.IsTerminal() {
		return ErrGameClosed
	}
	if g.schedule.HasStarted(now) {
		return ErrGameStarted
	}
	return nil
}

// Resize validates a new capacity against the players already booked and
// returns the resulting spotsRemaining.
func (g *Game) Resize(newCapacity int) (int, error) {
	if err := validateCapacity(newCapacity); err != nil {
		return 0, err
	}
	booked := g.BookedPlayers()
	if newCapacity < booked {
		return 0, ErrCapacityBelowBooked
	}
	return newCapacity - booked, nil
}

// Reschedule replaces schedule and price. Existing reservations keep the
// price they were booked at.
func (g *Game) Reschedule(schedule Schedule, price Price, notes string, now time.Time) {
	g.schedule = schedule
	g.price = price
	g.notes = notes
	g.updatedAt = now
}

// ChangeStatus applies an operator-requested status. Cancelled and completed
// are final; full and open are derived from capacity and cannot be forced.
func (g *Game) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if g.status == StatusCancelled || g.status == StatusCompleted {
		if next != g.status {
			return ErrGameClosed
		}
		return nil
	}
	switch next {
	case StatusFull, StatusOpen:
		next = NextStatus(StatusOpen, g.spotsRemaining)
	case StatusScheduled:
		if g.IsFull() {
			next = StatusFull
		}
	}
	g.status = next
	g.updatedAt = now
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < 1 || capacity > MaxCapacity {
		return ErrInvalidCapacity
	}
	return nil
}
