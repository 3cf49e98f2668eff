//go:build unit || e2e

package builder

import (
	"time"

	"pickup-rsvp/internal/domain/game"
	reqdto "pickup-rsvp/internal/handler/dto/request"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type GameBuilder struct {
	GameID          string
	StartsAt        time.Time
	DurationMinutes int
	Venue           string
	Address         string
	PriceCents      int64
	Currency        string
	Capacity        int
	SpotsRemaining  int
	Status          game.Status
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewGameBuilder() *GameBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &GameBuilder{
		GameID:          "2030-06-14-riverside",
		StartsAt:        now.Add(72 * time.Hour),
		DurationMinutes: 90,
		Venue:           "Riverside Park Field 3",
		Address:         "100 River Rd",
		PriceCents:      1000,
		Currency:        "usd",
		Capacity:        10,
		SpotsRemaining:  10,
		Status:          game.StatusOpen,
		Notes:           "Bring light and dark shirts",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *GameBuilder) With(mutate func(*GameBuilder)) *GameBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain goes through the validating constructors, so invalid builder
// values surface as domain errors.
func (b *GameBuilder) BuildDomain() (*game.Game, error) {
	id, err := game.NewID(b.GameID)
	if err != nil {
		return nil, err
	}
	schedule, err := game.NewSchedule(b.StartsAt, time.Duration(b.DurationMinutes)*time.Minute, b.Venue, b.Address)
	if err != nil {
		return nil, err
	}
	price, err := game.NewPrice(b.PriceCents, b.Currency)
	if err != nil {
		return nil, err
	}
	return game.NewGame(id, schedule, price, b.Capacity, b.Notes, b.CreatedAt)
}

// BuildReconstructed skips validation and keeps SpotsRemaining and Status.
func (b *GameBuilder) BuildReconstructed() *game.Game {
	return game.ReconstructGame(
		game.ReconstructID(b.GameID),
		game.ReconstructSchedule(b.StartsAt, time.Duration(b.DurationMinutes)*time.Minute, b.Venue, b.Address),
		game.ReconstructPrice(b.PriceCents, b.Currency),
		b.Capacity,
		b.SpotsRemaining,
		b.Status,
		b.Notes,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *GameBuilder) BuildInfra() sqlc.Games {
	return sqlc.Games{
		GameID:          b.GameID,
		StartsAt:        pgtype.Timestamptz{Time: b.StartsAt, Valid: true},
		DurationMinutes: int32(b.DurationMinutes),
		Venue:           b.Venue,
		Address:         b.Address,
		PriceCents:      b.PriceCents,
		Currency:        b.Currency,
		Capacity:        int32(b.Capacity),
		SpotsRemaining:  int32(b.SpotsRemaining),
		Status:          b.Status.String(),
		Notes:           b.Notes,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *GameBuilder) BuildView() *queries.GameView {
	return queries.NewGameView(b.BuildReconstructed())
}

func (b *GameBuilder) BuildCreateRequestDTO() reqdto.CreateGameRequest {
	return reqdto.CreateGameRequest{
		GameID:          b.GameID,
		StartsAt:        b.StartsAt,
		DurationMinutes: b.DurationMinutes,
		Venue:           b.Venue,
		Address:         b.Address,
		PriceCents:      b.PriceCents,
		Currency:        b.Currency,
		Capacity:        b.Capacity,
		Notes:           b.Notes,
	}
}

// Fluent builder methods
func (b *GameBuilder) WithID(id string) *GameBuilder {
	b.GameID = id
	return b
}

func (b *GameBuilder) WithStartsAt(t time.Time) *GameBuilder {
	b.StartsAt = t
	return b
}

func (b *GameBuilder) WithPrice(cents int64) *GameBuilder {
	b.PriceCents = cents
	return b
}

// WithCapacity resets the game to empty at the given capacity.
func (b *GameBuilder) WithCapacity(capacity int) *GameBuilder {
	b.Capacity = capacity
	b.SpotsRemaining = capacity
	return b
}

func (b *GameBuilder) WithSpotsRemaining(spots int) *GameBuilder {
	b.SpotsRemaining = spots
	return b
}

func (b *GameBuilder) WithStatus(status game.Status) *GameBuilder {
	b.Status = status
	return b
}

func (b *GameBuilder) AsFull() *GameBuilder {
	b.SpotsRemaining = 0
	b.Status = game.StatusFull
	return b
}

func (b *GameBuilder) AsCancelled() *GameBuilder {
	b.Status = game.StatusCancelled
	return b
}

func (b *GameBuilder) AsStarted() *GameBuilder {
	b.StartsAt = time.Now().UTC().Add(-30 * time.Minute).Truncate(time.Second)
	return b
}
