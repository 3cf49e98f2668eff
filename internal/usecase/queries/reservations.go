package queries

import (
	"context"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/infra"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/shared"
)

//go:generate mockgen -source=reservations.go -destination=../../../tests/mock/queries/reservations_mock.go -package=queriesmock
type ReservationQueries interface {
	// Lookup returns ErrReservationNotFound both for unknown codes and for
	// codes whose holder email does not match.
	Lookup(ctx context.Context, code, email string) (*ReservationView, error)
	Roster(ctx context.Context, gameID string) (*RosterView, error)
}

type ReservationReadStore interface {
	// FindByCode also returns the holder email so callers can check ownership.
	FindByCode(ctx context.Context, db sqlc.DBTX, code string) (*ReservationView, string, error)
	ListLiveByGame(ctx context.Context, db sqlc.DBTX, gameID string) ([]RosterReservation, error)
	ListWaitlist(ctx context.Context, db sqlc.DBTX, gameID string) ([]RosterWaitlistEntry, error)
}

type reservationQueriesImpl struct {
	uow        shared.UnitOfWork
	readStore  ReservationReadStore
	games      GameReadStore
	codePrefix string
}

func NewReservationQueries(uow shared.UnitOfWork, readStore ReservationReadStore, games GameReadStore, codePrefix string) ReservationQueries {
	return &reservationQueriesImpl{
		uow:        uow,
		readStore:  readStore,
		games:      games,
		codePrefix: codePrefix,
	}
}

// Lookup reads every code candidate before comparing the email, so an unknown
// code and a wrong email are indistinguishable.
func (q *reservationQueriesImpl) Lookup(ctx context.Context, code, email string) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var (
			found       *ReservationView
			holderEmail string
		)
		for _, candidate := range reservation.ParseCode(code, q.codePrefix) {
			v, holder, err := q.readStore.FindByCode(ctx, tx.DB(), candidate.String())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					continue
				}
				return err
			}
			if found == nil {
				found, holderEmail = v, holder
			}
		}
		if found == nil || !reservation.ReconstructContact("", holderEmail, "").Email().Matches(email) {
			return ErrReservationNotFound
		}

		g, err := q.games.FindByID(ctx, tx.DB(), found.GameID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		found.Game = g
		view = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) Roster(ctx context.Context, gameID string) (*RosterView, error) {
	var roster *RosterView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := q.games.FindByID(ctx, tx.DB(), gameID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGameNotFound
			}
			return err
		}

		reservations, err := q.readStore.ListLiveByGame(ctx, tx.DB(), gameID)
		if err != nil {
			return errs.Wrap(err, "list roster reservations")
		}
		waiting, err := q.readStore.ListWaitlist(ctx, tx.DB(), gameID)
		if err != nil {
			return errs.Wrap(err, "list roster waitlist")
		}

		roster = &RosterView{
			Game:         *g,
			Reservations: reservations,
			Waitlist:     waiting,
		}
		for _, r := range reservations {
			roster.LivePlayers += r.TotalPlayers
			switch r.PaymentMethod {
			case reservation.PaymentOnline.String():
				roster.PaidPlayers += r.TotalPlayers
			case reservation.PaymentCash.String():
				roster.CashPlayers += r.TotalPlayers
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}
