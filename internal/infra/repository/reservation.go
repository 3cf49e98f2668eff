package repository

import (
	"context"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/infra/repository/converter"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByCode(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.Reservations, error)
	GetReservationByCodeForUpdate(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.Reservations, error)
	GetLiveReservationByHolder(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLiveReservationByHolderParams) (sqlc.Reservations, error)
	GetReservationBySessionOrCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationBySessionOrCodeParams) (sqlc.Reservations, error)
	UpdateReservationState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStateParams) error
	ListReservationsByGame(ctx context.Context, db sqlc.DBTX, gameID string) ([]sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries *sqlc.Queries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces unique violations as DUPLICATE_KEY with the constraint name
// so callers can tell a code collision from a duplicate holder.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByCode(ctx context.Context, tx sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCode(ctx, tx, code.String())
	return r.toEntity(row, err)
}

func (r *ReservationRepository) FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCodeForUpdate(ctx, tx, code.String())
	return r.toEntity(row, err)
}

func (r *ReservationRepository) FindLiveByHolder(ctx context.Context, tx sqlc.DBTX, gameID string, email reservation.Email) (*reservation.Reservation, error) {
	row, err := r.queries.GetLiveReservationByHolder(ctx, tx, sqlc.GetLiveReservationByHolderParams{
		GameID:      gameID,
		HolderEmail: email.String(),
	})
	return r.toEntity(row, err)
}

func (r *ReservationRepository) FindBySessionOrCode(ctx context.Context, tx sqlc.DBTX, sessionID string, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationBySessionOrCode(ctx, tx, sqlc.GetReservationBySessionOrCodeParams{
		StripeSessionID:  pgconv.StringPtrToPgtype(&sessionID),
		ConfirmationCode: code.String(),
	})
	return r.toEntity(row, err)
}

func (r *ReservationRepository) UpdateState(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservationState(ctx, tx, converter.ReservationToStateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ListByGame(ctx context.Context, tx sqlc.DBTX, gameID string) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByGame(ctx, tx, gameID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	out := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		out[i] = converter.ReservationFromRow(row)
	}
	return out, nil
}

func (r *ReservationRepository) toEntity(row sqlc.Reservations, err error) (*reservation.Reservation, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}
