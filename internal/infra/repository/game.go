package repository

import (
	"context"

	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/infra/repository/converter"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

//go:generate mockgen -source=game.go -destination=../../../tests/mock/repository/game_mock.go -package=repositorymock
type GameWriteQueries interface {
	CreateGame(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGameParams) (sqlc.Games, error)
	GetGame(ctx context.Context, db sqlc.DBTX, gameID string) (sqlc.Games, error)
	GetGameForUpdate(ctx context.Context, db sqlc.DBTX, gameID string) (sqlc.Games, error)
	ClaimSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimSpotsParams) (sqlc.Games, error)
	ReleaseSpots(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSpotsParams) (sqlc.Games, error)
	ResizeGame(ctx context.Context, db sqlc.DBTX, arg sqlc.ResizeGameParams) (sqlc.Games, error)
	UpdateGameDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGameDetailsParams) (sqlc.Games, error)
}

type GameRepository struct {
	queries GameWriteQueries
	db      sqlc.DBTX
}

func NewGameRepository(queries GameWriteQueries, db sqlc.DBTX) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GameRepository) Create(ctx context.Context, tx sqlc.DBTX, g *game.Game) error {
	if _, err := r.queries.CreateGame(ctx, tx, converter.GameToCreateParams(g)); err != nil {
		return infra.WrapRepoErr("failed to create game", err)
	}
	return nil
}

func (r *GameRepository) FindByID(ctx context.Context, tx sqlc.DBTX, gameID string) (*game.Game, error) {
	row, err := r.queries.GetGame(ctx, tx, gameID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find game", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, gameID string) (*game.Game, error) {
	row, err := r.queries.GetGameForUpdate(ctx, tx, gameID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock game", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) ClaimSpots(ctx context.Context, tx sqlc.DBTX, gameID string, players int) (*game.Game, error) {
	row, err := r.queries.ClaimSpots(ctx, tx, sqlc.ClaimSpotsParams{
		Players: pgconv.IntToInt32(players),
		GameID:  gameID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("not enough spots to claim", err, infra.KindConditionFailed)
		}
		return nil, infra.WrapRepoErr("failed to claim spots", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) ReleaseSpots(ctx context.Context, tx sqlc.DBTX, gameID string, players int) (*game.Game, error) {
	row, err := r.queries.ReleaseSpots(ctx, tx, sqlc.ReleaseSpotsParams{
		Players: pgconv.IntToInt32(players),
		GameID:  gameID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to release spots", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) Resize(ctx context.Context, tx sqlc.DBTX, gameID string, capacity int) (*game.Game, error) {
	row, err := r.queries.ResizeGame(ctx, tx, sqlc.ResizeGameParams{
		Capacity: pgconv.IntToInt32(capacity),
		GameID:   gameID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("capacity below booked players", err, infra.KindConditionFailed)
		}
		return nil, infra.WrapRepoErr("failed to resize game", err)
	}
	return converter.GameFromRow(row), nil
}

func (r *GameRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, g *game.Game) (*game.Game, error) {
	row, err := r.queries.UpdateGameDetails(ctx, tx, converter.GameToUpdateParams(g))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update game", err)
	}
	return converter.GameFromRow(row), nil
}
