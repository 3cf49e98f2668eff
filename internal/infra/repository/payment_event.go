package repository

import (
	"context"

	"pickup-rsvp/internal/infra"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/usecase/shared"
)

//go:generate mockgen -source=payment_event.go -destination=../../../tests/mock/repository/payment_event_mock.go -package=repositorymock
type PaymentEventQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
	SetPaymentEventOutcome(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPaymentEventOutcomeParams) error
}

type PaymentEventRepository struct {
	queries PaymentEventQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentEventRepository) Record(ctx context.Context, tx sqlc.DBTX, ev shared.PaymentEvent) (bool, error) {
	n, err := r.queries.InsertPaymentEvent(ctx, tx, sqlc.InsertPaymentEventParams{
		EventID:          ev.EventID,
		EventType:        ev.EventType,
		SessionID:        ev.SessionID,
		ConfirmationCode: ev.ConfirmationCode,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}
	return n == 1, nil
}

func (r *PaymentEventRepository) SetOutcome(ctx context.Context, tx sqlc.DBTX, eventID, outcome string) error {
	err := r.queries.SetPaymentEventOutcome(ctx, tx, sqlc.SetPaymentEventOutcomeParams{
		Outcome: outcome,
		EventID: eventID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set payment event outcome", err)
	}
	return nil
}
