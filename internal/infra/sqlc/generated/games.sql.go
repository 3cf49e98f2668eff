// source: games.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const claimSpots = `-- name: ClaimSpots :one
UPDATE games
SET spots_remaining = spots_remaining - $1::int,
    status = CASE
        WHEN spots_remaining - $1::int = 0 THEN 'full'
        ELSE status
    END,
    updated_at = now()
WHERE game_id = $2
  AND spots_remaining >= $1::int
  AND status NOT IN ('in_progress', 'completed', 'cancelled')
RETURNING game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at
`

type ClaimSpotsParams struct {
	Players int32  `json:"players"`
	GameID  string `json:"game_id"`
}

// Decrements capacity only when enough spots remain and the game is still
// bookable. No row means the claim was rejected.
func (q *Queries) ClaimSpots(ctx context.Context, db DBTX, arg ClaimSpotsParams) (Games, error) {
	row := db.QueryRow(ctx, claimSpots, arg.Players, arg.GameID)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createGame = `-- name: CreateGame :one
INSERT INTO games (
    game_id, starts_at, duration_minutes, venue, address,
    price_cents, currency, capacity, spots_remaining, status, notes,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $8, $9, $10,
    $11, $11
)
RETURNING game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at
`

type CreateGameParams struct {
	GameID          string             `json:"game_id"`
	StartsAt        pgtype.Timestamptz `json:"starts_at"`
	DurationMinutes int32              `json:"duration_minutes"`
	Venue           string             `json:"venue"`
	Address         string             `json:"address"`
	PriceCents      int64              `json:"price_cents"`
	Currency        string             `json:"currency"`
	Capacity        int32              `json:"capacity"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	Now             pgtype.Timestamptz `json:"now"`
}

func (q *Queries) CreateGame(ctx context.Context, db DBTX, arg CreateGameParams) (Games, error) {
	row := db.QueryRow(ctx, createGame,
		arg.GameID,
		arg.StartsAt,
		arg.DurationMinutes,
		arg.Venue,
		arg.Address,
		arg.PriceCents,
		arg.Currency,
		arg.Capacity,
		arg.Status,
		arg.Notes,
		arg.Now,
	)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getGame = `-- name: GetGame :one
SELECT game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at FROM games
WHERE game_id = $1
`

func (q *Queries) GetGame(ctx context.Context, db DBTX, gameID string) (Games, error) {
	row := db.QueryRow(ctx, getGame, gameID)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getGameForUpdate = `-- name: GetGameForUpdate :one
SELECT game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at FROM games
WHERE game_id = $1
FOR UPDATE
`

func (q *Queries) GetGameForUpdate(ctx context.Context, db DBTX, gameID string) (Games, error) {
	row := db.QueryRow(ctx, getGameForUpdate, gameID)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listUpcomingGames = `-- name: ListUpcomingGames :many
SELECT game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at FROM games
WHERE starts_at >= $1
  AND status <> 'cancelled'
ORDER BY starts_at, game_id
LIMIT $2
`

type ListUpcomingGamesParams struct {
	From    pgtype.Timestamptz `json:"from"`
	MaxRows int32              `json:"max_rows"`
}

func (q *Queries) ListUpcomingGames(ctx context.Context, db DBTX, arg ListUpcomingGamesParams) ([]Games, error) {
	rows, err := db.Query(ctx, listUpcomingGames, arg.From, arg.MaxRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Games
	for rows.Next() {
		var i Games
		if err := rows.Scan(
			&i.GameID,
			&i.StartsAt,
			&i.DurationMinutes,
			&i.Venue,
			&i.Address,
			&i.PriceCents,
			&i.Currency,
			&i.Capacity,
			&i.SpotsRemaining,
			&i.Status,
			&i.Notes,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const releaseSpots = `-- name: ReleaseSpots :one
UPDATE games
SET spots_remaining = LEAST(capacity, spots_remaining + $1::int),
    status = CASE
        WHEN status = 'full' AND LEAST(capacity, spots_remaining + $1::int) > 0 THEN 'open'
        ELSE status
    END,
    updated_at = now()
WHERE game_id = $2
RETURNING game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at
`

type ReleaseSpotsParams struct {
	Players int32  `json:"players"`
	GameID  string `json:"game_id"`
}

func (q *Queries) ReleaseSpots(ctx context.Context, db DBTX, arg ReleaseSpotsParams) (Games, error) {
	row := db.QueryRow(ctx, releaseSpots, arg.Players, arg.GameID)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const resizeGame = `-- name: ResizeGame :one
UPDATE games
SET capacity = $1::int,
    spots_remaining = $1::int - (capacity - spots_remaining),
    status = CASE
        WHEN status IN ('in_progress', 'completed', 'cancelled') THEN status
        WHEN $1::int - (capacity - spots_remaining) = 0 THEN 'full'
        WHEN status = 'full' THEN 'open'
        ELSE status
    END,
    updated_at = now()
WHERE game_id = $2
  AND capacity - spots_remaining <= $1::int
RETURNING game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at
`

type ResizeGameParams struct {
	Capacity int32  `json:"capacity"`
	GameID   string `json:"game_id"`
}

func (q *Queries) ResizeGame(ctx context.Context, db DBTX, arg ResizeGameParams) (Games, error) {
	row := db.QueryRow(ctx, resizeGame, arg.Capacity, arg.GameID)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateGameDetails = `-- name: UpdateGameDetails :one
UPDATE games
SET starts_at = $1,
    duration_minutes = $2,
    venue = $3,
    address = $4,
    price_cents = $5,
    currency = $6,
    notes = $7,
    status = $8,
    updated_at = $9
WHERE game_id = $10
RETURNING game_id, starts_at, duration_minutes, venue, address, price_cents, currency, capacity, spots_remaining, status, notes, created_at, updated_at
`

type UpdateGameDetailsParams struct {
	StartsAt        pgtype.Timestamptz `json:"starts_at"`
	DurationMinutes int32              `json:"duration_minutes"`
	Venue           string             `json:"venue"`
	Address         string             `json:"address"`
	PriceCents      int64              `json:"price_cents"`
	Currency        string             `json:"currency"`
	Notes           string             `json:"notes"`
	Status          string             `json:"status"`
	Now             pgtype.Timestamptz `json:"now"`
	GameID          string             `json:"game_id"`
}

func (q *Queries) UpdateGameDetails(ctx context.Context, db DBTX, arg UpdateGameDetailsParams) (Games, error) {
	row := db.QueryRow(ctx, updateGameDetails,
		arg.StartsAt,
		arg.DurationMinutes,
		arg.Venue,
		arg.Address,
		arg.PriceCents,
		arg.Currency,
		arg.Notes,
		arg.Status,
		arg.Now,
		arg.GameID,
	)
	var i Games
	err := row.Scan(
		&i.GameID,
		&i.StartsAt,
		&i.DurationMinutes,
		&i.Venue,
		&i.Address,
		&i.PriceCents,
		&i.Currency,
		&i.Capacity,
		&i.SpotsRemaining,
		&i.Status,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
