// source: payment_events.sql

package sqlc

import (
	"context"
)

const insertPaymentEvent = `-- name: InsertPaymentEvent :execrows
INSERT INTO payment_events (event_id, event_type, session_id, confirmation_code)
VALUES ($1, $2, $3, $4)
ON CONFLICT (event_id) DO NOTHING
`

type InsertPaymentEventParams struct {
	EventID          string `json:"event_id"`
	EventType        string `json:"event_type"`
	SessionID        string `json:"session_id"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (q *Queries) InsertPaymentEvent(ctx context.Context, db DBTX, arg InsertPaymentEventParams) (int64, error) {
	result, err := db.Exec(ctx, insertPaymentEvent,
		arg.EventID,
		arg.EventType,
		arg.SessionID,
		arg.ConfirmationCode,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const setPaymentEventOutcome = `-- name: SetPaymentEventOutcome :exec
UPDATE payment_events
SET outcome = $1
WHERE event_id = $2
`

type SetPaymentEventOutcomeParams struct {
	Outcome string `json:"outcome"`
	EventID string `json:"event_id"`
}

func (q *Queries) SetPaymentEventOutcome(ctx context.Context, db DBTX, arg SetPaymentEventOutcomeParams) error {
	_, err := db.Exec(ctx, setPaymentEventOutcome, arg.Outcome, arg.EventID)
	return err
}
