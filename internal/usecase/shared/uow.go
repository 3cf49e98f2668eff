package shared

import (
	"context"
	"time"

	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Games() GameRepository
	Reservations() ReservationRepository
	Waitlist() WaitlistRepository
	PaymentEvents() PaymentEventRepository
	Operators() OperatorRepository
	DB() sqlc.DBTX
}

type GameRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, g *game.Game) error
	FindByID(ctx context.Context, tx sqlc.DBTX, gameID string) (*game.Game, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, gameID string) (*game.Game, error)
	// ClaimSpots fails with CONDITION_FAILED when the game lacks room or is closed.
	ClaimSpots(ctx context.Context, tx sqlc.DBTX, gameID string, players int) (*game.Game, error)
	ReleaseSpots(ctx context.Context, tx sqlc.DBTX, gameID string, players int) (*game.Game, error)
	// Resize fails with CONDITION_FAILED when the new capacity is below the booked count.
	Resize(ctx context.Context, tx sqlc.DBTX, gameID string, capacity int) (*game.Game, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, g *game.Game) (*game.Game, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByCode(ctx context.Context, tx sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error)
	FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error)
	FindLiveByHolder(ctx context.Context, tx sqlc.DBTX, gameID string, email reservation.Email) (*reservation.Reservation, error)
	FindBySessionOrCode(ctx context.Context, tx sqlc.DBTX, sessionID string, code reservation.Code) (*reservation.Reservation, error)
	UpdateState(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	ListByGame(ctx context.Context, tx sqlc.DBTX, gameID string) ([]*reservation.Reservation, error)
}

type WaitlistRepository interface {
	// Enqueue stores the entry and returns its 1-based position.
	Enqueue(ctx context.Context, tx sqlc.DBTX, entry *waitlist.Entry) (int, error)
	FindByEmail(ctx context.Context, tx sqlc.DBTX, gameID string, email reservation.Email) (*waitlist.Entry, error)
	// PromoteNext marks the earliest un-notified entry. NOT_FOUND when the queue is empty.
	PromoteNext(ctx context.Context, tx sqlc.DBTX, gameID string, now time.Time) (*waitlist.Entry, error)
	Remove(ctx context.Context, tx sqlc.DBTX, gameID string, email reservation.Email) error
	ListByGame(ctx context.Context, tx sqlc.DBTX, gameID string) ([]*waitlist.Entry, error)
}

type PaymentEvent struct {
	EventID          string
	EventType        string
	SessionID        string
	ConfirmationCode string
}

type PaymentEventRepository interface {
	// Record returns false when the event id has been seen before.
	Record(ctx context.Context, tx sqlc.DBTX, ev PaymentEvent) (bool, error)
	SetOutcome(ctx context.Context, tx sqlc.DBTX, eventID, outcome string) error
}

type OperatorRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, op *operator.Operator) error
	FindByEmail(ctx context.Context, tx sqlc.DBTX, email operator.Email) (*operator.Operator, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*operator.Operator, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
}
