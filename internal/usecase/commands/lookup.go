package commands

import (
	"context"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/shared"
)

// findOwnedReservation resolves a holder-supplied code, trying the prefixed
// form when the prefix was left off. Every candidate is looked up before the
// email is compared, so a missing reservation and an email mismatch cost the
// same queries and produce the same error.
func findOwnedReservation(
	ctx context.Context,
	tx shared.Tx,
	rawCode, claimedEmail, prefix string,
	forUpdate bool,
) (*reservation.Reservation, error) {
	var found *reservation.Reservation
	for _, code := range reservation.ParseCode(rawCode, prefix) {
		var (
			res *reservation.Reservation
			err error
		)
		if forUpdate {
			res, err = tx.Reservations().FindByCodeForUpdate(ctx, tx.DB(), code)
		} else {
			res, err = tx.Reservations().FindByCode(ctx, tx.DB(), code)
		}
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if found == nil {
			found = res
		}
	}
	if found == nil || !found.Contact().Email().Matches(claimedEmail) {
		return nil, ErrReservationNotFound
	}
	return found, nil
}
