package readstore

import (
	"context"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/infra"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
	"pickup-rsvp/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationByCode(ctx context.Context, db sqlc.DBTX, confirmationCode string) (sqlc.Reservations, error)
	ListReservationsByGame(ctx context.Context, db sqlc.DBTX, gameID string) ([]sqlc.Reservations, error)
	ListWaitlistByGame(ctx context.Context, db sqlc.DBTX, gameID string) ([]sqlc.WaitlistEntries, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
}

func NewReservationReadStore(queries ReservationViewQueries) *ReservationReadStore {
	return &ReservationReadStore{queries: queries}
}

func (r *ReservationReadStore) FindByCode(ctx context.Context, db sqlc.DBTX, code string) (*queries.ReservationView, string, error) {
	row, err := r.queries.GetReservationByCode(ctx, db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get reservation", err)
	}
	return toReservationView(row), row.HolderEmail, nil
}

// ListLiveByGame returns every reservation that still holds spots, oldest first.
func (r *ReservationReadStore) ListLiveByGame(ctx context.Context, db sqlc.DBTX, gameID string) ([]queries.RosterReservation, error) {
	rows, err := r.queries.ListReservationsByGame(ctx, db, gameID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	out := make([]queries.RosterReservation, 0, len(rows))
	for _, row := range rows {
		if row.Status == reservation.StatusCancelled.String() {
			continue
		}
		out = append(out, queries.RosterReservation{
			ConfirmationCode: row.ConfirmationCode,
			HolderName:       row.HolderName,
			HolderEmail:      row.HolderEmail,
			HolderPhone:      row.HolderPhone,
			Guests:           guestNames(row.GuestNames),
			TotalPlayers:     int(row.TotalPlayers),
			TotalAmount:      row.TotalAmountCents,
			PaymentMethod:    row.PaymentMethod,
			PaymentStatus:    row.PaymentStatus,
			Status:           row.Status,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *ReservationReadStore) ListWaitlist(ctx context.Context, db sqlc.DBTX, gameID string) ([]queries.RosterWaitlistEntry, error) {
	rows, err := r.queries.ListWaitlistByGame(ctx, db, gameID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist", err)
	}

	out := make([]queries.RosterWaitlistEntry, len(rows))
	for i, row := range rows {
		out[i] = queries.RosterWaitlistEntry{
			Position:   i + 1,
			Name:       row.Name,
			Email:      row.Email,
			Phone:      row.Phone,
			Notified:   row.Notified,
			NotifiedAt: pgconv.TimePtrFromPgtype(row.NotifiedAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func toReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ConfirmationCode: row.ConfirmationCode,
		GameID:           row.GameID,
		HolderName:       row.HolderName,
		Guests:           guestNames(row.GuestNames),
		TotalPlayers:     int(row.TotalPlayers),
		TotalAmount:      row.TotalAmountCents,
		Currency:         row.Currency,
		PaymentMethod:    row.PaymentMethod,
		PaymentStatus:    row.PaymentStatus,
		Status:           row.Status,
		RefundEligible:   pgconv.BoolPtrFromPgtype(row.RefundEligible),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func guestNames(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
