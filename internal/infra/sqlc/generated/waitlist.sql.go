// source: waitlist.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createWaitlistEntry = `-- name: CreateWaitlistEntry :one
INSERT INTO waitlist_entries (id, game_id, name, email, phone, language, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, seq, game_id, name, email, phone, language, notified, notified_at, created_at
`

type CreateWaitlistEntryParams struct {
	ID        uuid.UUID          `json:"id"`
	GameID    string             `json:"game_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Language  string             `json:"language"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateWaitlistEntry(ctx context.Context, db DBTX, arg CreateWaitlistEntryParams) (WaitlistEntries, error) {
	row := db.QueryRow(ctx, createWaitlistEntry,
		arg.ID,
		arg.GameID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Language,
		arg.CreatedAt,
	)
	var i WaitlistEntries
	err := row.Scan(
		&i.ID,
		&i.Seq,
		&i.GameID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Language,
		&i.Notified,
		&i.NotifiedAt,
		&i.CreatedAt,
	)
	return i, err
}

const deleteWaitlistEntryByEmail = `-- name: DeleteWaitlistEntryByEmail :exec
DELETE FROM waitlist_entries
WHERE game_id = $1
  AND email = $2
`

type DeleteWaitlistEntryByEmailParams struct {
	GameID string `json:"game_id"`
	Email  string `json:"email"`
}

func (q *Queries) DeleteWaitlistEntryByEmail(ctx context.Context, db DBTX, arg DeleteWaitlistEntryByEmailParams) error {
	_, err := db.Exec(ctx, deleteWaitlistEntryByEmail, arg.GameID, arg.Email)
	return err
}

const getWaitlistEntryByEmail = `-- name: GetWaitlistEntryByEmail :one
SELECT id, seq, game_id, name, email, phone, language, notified, notified_at, created_at FROM waitlist_entries
WHERE game_id = $1
  AND email = $2
`

type GetWaitlistEntryByEmailParams struct {
	GameID string `json:"game_id"`
	Email  string `json:"email"`
}

func (q *Queries) GetWaitlistEntryByEmail(ctx context.Context, db DBTX, arg GetWaitlistEntryByEmailParams) (WaitlistEntries, error) {
	row := db.QueryRow(ctx, getWaitlistEntryByEmail, arg.GameID, arg.Email)
	var i WaitlistEntries
	err := row.Scan(
		&i.ID,
		&i.Seq,
		&i.GameID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Language,
		&i.Notified,
		&i.NotifiedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getWaitlistPosition = `-- name: GetWaitlistPosition :one
SELECT count(*)::int AS position
FROM waitlist_entries w
WHERE w.game_id = $1
  AND (w.created_at, w.seq) <= ($2::timestamptz, $3::bigint)
`

type GetWaitlistPositionParams struct {
	GameID    string             `json:"game_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	Seq       int64              `json:"seq"`
}

func (q *Queries) GetWaitlistPosition(ctx context.Context, db DBTX, arg GetWaitlistPositionParams) (int32, error) {
	row := db.QueryRow(ctx, getWaitlistPosition, arg.GameID, arg.CreatedAt, arg.Seq)
	var position int32
	err := row.Scan(&position)
	return position, err
}

const listWaitlistByGame = `-- name: ListWaitlistByGame :many
SELECT id, seq, game_id, name, email, phone, language, notified, notified_at, created_at FROM waitlist_entries
WHERE game_id = $1
ORDER BY created_at, seq
`

func (q *Queries) ListWaitlistByGame(ctx context.Context, db DBTX, gameID string) ([]WaitlistEntries, error) {
	rows, err := db.Query(ctx, listWaitlistByGame, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WaitlistEntries
	for rows.Next() {
		var i WaitlistEntries
		if err := rows.Scan(
			&i.ID,
			&i.Seq,
			&i.GameID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Language,
			&i.Notified,
			&i.NotifiedAt,
			&i.CreatedAt,
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

const promoteNextWaitlistEntry = `-- name: PromoteNextWaitlistEntry :one
UPDATE waitlist_entries
SET notified = true,
    notified_at = $1
WHERE id = (
    SELECT w.id FROM waitlist_entries w
    WHERE w.game_id = $2
      AND NOT w.notified
    ORDER BY w.created_at, w.seq
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, seq, game_id, name, email, phone, language, notified, notified_at, created_at
`

type PromoteNextWaitlistEntryParams struct {
	NotifiedAt pgtype.Timestamptz `json:"notified_at"`
	GameID     string             `json:"game_id"`
}

func (q *Queries) PromoteNextWaitlistEntry(ctx context.Context, db DBTX, arg PromoteNextWaitlistEntryParams) (WaitlistEntries, error) {
	row := db.QueryRow(ctx, promoteNextWaitlistEntry, arg.NotifiedAt, arg.GameID)
	var i WaitlistEntries
	err := row.Scan(
		&i.ID,
		&i.Seq,
		&i.GameID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Language,
		&i.Notified,
		&i.NotifiedAt,
		&i.CreatedAt,
	)
	return i, err
}
