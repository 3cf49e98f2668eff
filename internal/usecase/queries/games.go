package queries

import (
	"context"
	"log/slog"
	"time"

	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/internal/infra"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/clock"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/shared"
)

const (
	DefaultUpcomingLimit = 50
	MaxUpcomingLimit     = 200
)

var (
	ErrGameNotFound        = errs.New("game not found")
	ErrReservationNotFound = errs.New("reservation not found or email does not match")
	ErrOperatorNotFound    = errs.New("operator not found")
	ErrOperatorInactive    = errs.New("operator account is inactive")
)

//go:generate mockgen -source=games.go -destination=../../../tests/mock/queries/games_mock.go -package=queriesmock
type GameQueries interface {
	ListUpcoming(ctx context.Context, limit int) ([]*GameView, error)
	GetGame(ctx context.Context, gameID string) (*GameView, error)
}

type GameReadStore interface {
	ListUpcoming(ctx context.Context, db sqlc.DBTX, from time.Time, limit int) ([]*GameView, error)
	FindByID(ctx context.Context, db sqlc.DBTX, gameID string) (*GameView, error)
}

// CacheStamp is the cache generation a reader saw on a miss. Fills carry it
// back so a view loaded before an invalidation is never served.
type CacheStamp int64

// NoCacheStamp marks a miss where the generation could not be read. Fills
// with it are dropped.
const NoCacheStamp CacheStamp = -1

// GameCache is a best-effort read-through cache. Misses and backend errors
// both report ok=false; callers fall back to the read store.
type GameCache interface {
	GetGame(ctx context.Context, gameID string) (*GameView, CacheStamp, bool)
	SetGame(ctx context.Context, stamp CacheStamp, view *GameView)
	GetUpcoming(ctx context.Context) ([]*GameView, CacheStamp, bool)
	SetUpcoming(ctx context.Context, stamp CacheStamp, views []*GameView)
}

type gameQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore GameReadStore
	cache     GameCache
	clock     clock.Clock
}

func NewGameQueries(uow shared.UnitOfWork, readStore GameReadStore, cache GameCache, clk clock.Clock) GameQueries {
	return &gameQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
		clock:     clk,
	}
}

func (q *gameQueriesImpl) ListUpcoming(ctx context.Context, limit int) ([]*GameView, error) {
	limit = clampLimit(limit)
	now := q.clock.Now()

	cached, stamp, ok := q.cache.GetUpcoming(ctx)
	if ok {
		return trimUpcoming(cached, now, limit), nil
	}

	var views []*GameView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.readStore.ListUpcoming(ctx, db, now, MaxUpcomingLimit)
		return err
	})
	if err != nil {
		return nil, err
	}

	q.cache.SetUpcoming(ctx, stamp, views)
	return trimUpcoming(views, now, limit), nil
}

func (q *gameQueriesImpl) GetGame(ctx context.Context, gameID string) (*GameView, error) {
	cached, stamp, ok := q.cache.GetGame(ctx, gameID)
	if ok {
		return cached, nil
	}

	var view *GameView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, db, gameID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	q.cache.SetGame(ctx, stamp, view)
	slog.Debug("game view loaded from store", "game_id", gameID)
	return view, nil
}

// trimUpcoming drops games that started since the list was cached.
func trimUpcoming(views []*GameView, now time.Time, limit int) []*GameView {
	out := make([]*GameView, 0, min(len(views), limit))
	for _, v := range views {
		if v.StartsAt.Before(now) {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultUpcomingLimit
	}
	if limit > MaxUpcomingLimit {
		return MaxUpcomingLimit
	}
	return limit
}

// NewGameView flattens a game into its catalog shape.
func NewGameView(g *game.Game) *GameView {
	s := g.Schedule()
	return &GameView{
		GameID:          g.ID().String(),
		StartsAt:        s.StartsAt(),
		EndsAt:          s.EndsAt(),
		Date:            s.Date(),
		Time:            s.TimeOfDay(),
		DayOfWeek:       s.DayOfWeek().String(),
		DurationMinutes: int(s.Duration() / time.Minute),
		Venue:           s.Venue(),
		Address:         s.Address(),
		PriceCents:      g.Price().AmountCents(),
		Currency:        g.Price().Currency(),
		Capacity:        g.Capacity(),
		SpotsRemaining:  g.SpotsRemaining(),
		Status:          g.Status().String(),
		Notes:           g.Notes(),
		UpdatedAt:       g.UpdatedAt(),
	}
}
