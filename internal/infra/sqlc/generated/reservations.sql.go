// source: reservations.sql

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countLivePlayersByGame = `-- name: CountLivePlayersByGame :one
SELECT COALESCE(SUM(total_players), 0)::int AS players
FROM reservations
WHERE game_id = $1
  AND status <> 'cancelled'
`

func (q *Queries) CountLivePlayersByGame(ctx context.Context, db DBTX, gameID string) (int32, error) {
	row := db.QueryRow(ctx, countLivePlayersByGame, gameID)
	var players int32
	err := row.Scan(&players)
	return players, err
}

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (
    confirmation_code, game_id, holder_name, holder_email, holder_phone,
    guest_names, total_players, unit_price_cents, total_amount_cents, currency,
    payment_method, payment_status, status, waiver_accepted_at, waiver_ip,
    language, stripe_session_id, stripe_payment_intent_id, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10,
    $11, $12, $13, $14, $15,
    $16, $17, $18, $19, $19
)
`

type CreateReservationParams struct {
	ConfirmationCode      string             `json:"confirmation_code"`
	GameID                string             `json:"game_id"`
	HolderName            string             `json:"holder_name"`
	HolderEmail           string             `json:"holder_email"`
	HolderPhone           string             `json:"holder_phone"`
	GuestNames            []string           `json:"guest_names"`
	TotalPlayers          int32              `json:"total_players"`
	UnitPriceCents        int64              `json:"unit_price_cents"`
	TotalAmountCents      int64              `json:"total_amount_cents"`
	Currency              string             `json:"currency"`
	PaymentMethod         string             `json:"payment_method"`
	PaymentStatus         string             `json:"payment_status"`
	Status                string             `json:"status"`
	WaiverAcceptedAt      pgtype.Timestamptz `json:"waiver_accepted_at"`
	WaiverIp              string             `json:"waiver_ip"`
	Language              string             `json:"language"`
	StripeSessionID       pgtype.Text        `json:"stripe_session_id"`
	StripePaymentIntentID pgtype.Text        `json:"stripe_payment_intent_id"`
	CreatedAt             pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ConfirmationCode,
		arg.GameID,
		arg.HolderName,
		arg.HolderEmail,
		arg.HolderPhone,
		arg.GuestNames,
		arg.TotalPlayers,
		arg.UnitPriceCents,
		arg.TotalAmountCents,
		arg.Currency,
		arg.PaymentMethod,
		arg.PaymentStatus,
		arg.Status,
		arg.WaiverAcceptedAt,
		arg.WaiverIp,
		arg.Language,
		arg.StripeSessionID,
		arg.StripePaymentIntentID,
		arg.CreatedAt,
	)
	return err
}

const getLiveReservationByHolder = `-- name: GetLiveReservationByHolder :one
SELECT confirmation_code, game_id, holder_name, holder_email, holder_phone, guest_names, total_players, unit_price_cents, total_amount_cents, currency, payment_method, payment_status, status, waiver_accepted_at, waiver_ip, language, stripe_session_id, stripe_payment_intent_id, refund_id, refund_eligible, cancelled_at, created_at, updated_at FROM reservations
WHERE game_id = $1
  AND lower(holder_email) = lower($2)
  AND status <> 'cancelled'
LIMIT 1
`

type GetLiveReservationByHolderParams struct {
	GameID      string `json:"game_id"`
	HolderEmail string `json:"holder_email"`
}

func (q *Queries) GetLiveReservationByHolder(ctx context.Context, db DBTX, arg GetLiveReservationByHolderParams) (Reservations, error) {
	row := db.QueryRow(ctx, getLiveReservationByHolder, arg.GameID, arg.HolderEmail)
	var i Reservations
	err := row.Scan(
		&i.ConfirmationCode,
		&i.GameID,
		&i.HolderName,
		&i.HolderEmail,
		&i.HolderPhone,
		&i.GuestNames,
		&i.TotalPlayers,
		&i.UnitPriceCents,
		&i.TotalAmountCents,
		&i.Currency,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.Status,
		&i.WaiverAcceptedAt,
		&i.WaiverIp,
		&i.Language,
		&i.StripeSessionID,
		&i.StripePaymentIntentID,
		&i.RefundID,
		&i.RefundEligible,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReservationByCode = `-- name: GetReservationByCode :one
SELECT confirmation_code, game_id, holder_name, holder_email, holder_phone, guest_names, total_players, unit_price_cents, total_amount_cents, currency, payment_method, payment_status, status, waiver_accepted_at, waiver_ip, language, stripe_session_id, stripe_payment_intent_id, refund_id, refund_eligible, cancelled_at, created_at, updated_at FROM reservations
WHERE confirmation_code = $1
`

func (q *Queries) GetReservationByCode(ctx context.Context, db DBTX, confirmationCode string) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByCode, confirmationCode)
	var i Reservations
	err := row.Scan(
		&i.ConfirmationCode,
		&i.GameID,
		&i.HolderName,
		&i.HolderEmail,
		&i.HolderPhone,
		&i.GuestNames,
		&i.TotalPlayers,
		&i.UnitPriceCents,
		&i.TotalAmountCents,
		&i.Currency,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.Status,
		&i.WaiverAcceptedAt,
		&i.WaiverIp,
		&i.Language,
		&i.StripeSessionID,
		&i.StripePaymentIntentID,
		&i.RefundID,
		&i.RefundEligible,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReservationByCodeForUpdate = `-- name: GetReservationByCodeForUpdate :one
SELECT confirmation_code, game_id, holder_name, holder_email, holder_phone, guest_names, total_players, unit_price_cents, total_amount_cents, currency, payment_method, payment_status, status, waiver_accepted_at, waiver_ip, language, stripe_session_id, stripe_payment_intent_id, refund_id, refund_eligible, cancelled_at, created_at, updated_at FROM reservations
WHERE confirmation_code = $1
FOR UPDATE
`

func (q *Queries) GetReservationByCodeForUpdate(ctx context.Context, db DBTX, confirmationCode string) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByCodeForUpdate, confirmationCode)
	var i Reservations
	err := row.Scan(
		&i.ConfirmationCode,
		&i.GameID,
		&i.HolderName,
		&i.HolderEmail,
		&i.HolderPhone,
		&i.GuestNames,
		&i.TotalPlayers,
		&i.UnitPriceCents,
		&i.TotalAmountCents,
		&i.Currency,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.Status,
		&i.WaiverAcceptedAt,
		&i.WaiverIp,
		&i.Language,
		&i.StripeSessionID,
		&i.StripePaymentIntentID,
		&i.RefundID,
		&i.RefundEligible,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getReservationBySessionOrCode = `-- name: GetReservationBySessionOrCode :one
SELECT confirmation_code, game_id, holder_name, holder_email, holder_phone, guest_names, total_players, unit_price_cents, total_amount_cents, currency, payment_method, payment_status, status, waiver_accepted_at, waiver_ip, language, stripe_session_id, stripe_payment_intent_id, refund_id, refund_eligible, cancelled_at, created_at, updated_at FROM reservations
WHERE stripe_session_id = $1
   OR confirmation_code = $2
LIMIT 1
`

type GetReservationBySessionOrCodeParams struct {
	StripeSessionID  pgtype.Text `json:"stripe_session_id"`
	ConfirmationCode string      `json:"confirmation_code"`
}

func (q *Queries) GetReservationBySessionOrCode(ctx context.Context, db DBTX, arg GetReservationBySessionOrCodeParams) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationBySessionOrCode, arg.StripeSessionID, arg.ConfirmationCode)
	var i Reservations
	err := row.Scan(
		&i.ConfirmationCode,
		&i.GameID,
		&i.HolderName,
		&i.HolderEmail,
		&i.HolderPhone,
		&i.GuestNames,
		&i.TotalPlayers,
		&i.UnitPriceCents,
		&i.TotalAmountCents,
		&i.Currency,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.Status,
		&i.WaiverAcceptedAt,
		&i.WaiverIp,
		&i.Language,
		&i.StripeSessionID,
		&i.StripePaymentIntentID,
		&i.RefundID,
		&i.RefundEligible,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listReservationsByGame = `-- name: ListReservationsByGame :many
SELECT confirmation_code, game_id, holder_name, holder_email, holder_phone, guest_names, total_players, unit_price_cents, total_amount_cents, currency, payment_method, payment_status, status, waiver_accepted_at, waiver_ip, language, stripe_session_id, stripe_payment_intent_id, refund_id, refund_eligible, cancelled_at, created_at, updated_at FROM reservations
WHERE game_id = $1
ORDER BY created_at, confirmation_code
`

func (q *Queries) ListReservationsByGame(ctx context.Context, db DBTX, gameID string) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByGame, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		var i Reservations
		if err := rows.Scan(
			&i.ConfirmationCode,
			&i.GameID,
			&i.HolderName,
			&i.HolderEmail,
			&i.HolderPhone,
			&i.GuestNames,
			&i.TotalPlayers,
			&i.UnitPriceCents,
			&i.TotalAmountCents,
			&i.Currency,
			&i.PaymentMethod,
			&i.PaymentStatus,
			&i.Status,
			&i.WaiverAcceptedAt,
			&i.WaiverIp,
			&i.Language,
			&i.StripeSessionID,
			&i.StripePaymentIntentID,
			&i.RefundID,
			&i.RefundEligible,
			&i.CancelledAt,
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

const updateReservationState = `-- name: UpdateReservationState :exec
UPDATE reservations
SET status = $1,
    payment_status = $2,
    refund_eligible = $3,
    refund_id = $4,
    cancelled_at = $5,
    updated_at = $6
WHERE confirmation_code = $7
`

type UpdateReservationStateParams struct {
	Status           string             `json:"status"`
	PaymentStatus    string             `json:"payment_status"`
	RefundEligible   pgtype.Bool        `json:"refund_eligible"`
	RefundID         pgtype.Text        `json:"refund_id"`
	CancelledAt      pgtype.Timestamptz `json:"cancelled_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
	ConfirmationCode string             `json:"confirmation_code"`
}

func (q *Queries) UpdateReservationState(ctx context.Context, db DBTX, arg UpdateReservationStateParams) error {
	_, err := db.Exec(ctx, updateReservationState,
		arg.Status,
		arg.PaymentStatus,
		arg.RefundEligible,
		arg.RefundID,
		arg.CancelledAt,
		arg.UpdatedAt,
		arg.ConfirmationCode,
	)
	return err
}
