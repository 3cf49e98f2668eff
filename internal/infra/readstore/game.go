package readstore

import (
	"context"
	"time"

	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/infra/repository/converter"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
	"pickup-rsvp/internal/usecase/queries"
)

type GameViewQueries interface {
	GetGame(ctx context.Context, db sqlc.DBTX, gameID string) (sqlc.Games, error)
	ListUpcomingGames(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingGamesParams) ([]sqlc.Games, error)
}

type GameReadStore struct {
	queries GameViewQueries
}

func NewGameReadStore(queries GameViewQueries) *GameReadStore {
	return &GameReadStore{queries: queries}
}

func (r *GameReadStore) FindByID(ctx context.Context, db sqlc.DBTX, gameID string) (*queries.GameView, error) {
	row, err := r.queries.GetGame(ctx, db, gameID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get game", err)
	}
	return queries.NewGameView(converter.GameFromRow(row)), nil
}

func (r *GameReadStore) ListUpcoming(ctx context.Context, db sqlc.DBTX, from time.Time, limit int) ([]*queries.GameView, error) {
	rows, err := r.queries.ListUpcomingGames(ctx, db, sqlc.ListUpcomingGamesParams{
		From:    pgconv.TimeToPgtype(from),
		MaxRows: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming games", err)
	}

	views := make([]*queries.GameView, len(rows))
	for i, row := range rows {
		views[i] = queries.NewGameView(converter.GameFromRow(row))
	}
	return views, nil
}
