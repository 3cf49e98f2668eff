package converter

import (
	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

func WaitlistEntryToCreateParams(e *waitlist.Entry) sqlc.CreateWaitlistEntryParams {
	c := e.Contact()
	return sqlc.CreateWaitlistEntryParams{
		ID:        e.ID(),
		GameID:    e.GameID(),
		Name:      c.Name(),
		Email:     c.Email().String(),
		Phone:     c.Phone(),
		Language:  e.Language().String(),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

func WaitlistEntryFromRow(row sqlc.WaitlistEntries) *waitlist.Entry {
	return waitlist.ReconstructEntry(
		row.ID,
		row.GameID,
		reservation.ReconstructContact(row.Name, row.Email, row.Phone),
		reservation.NewLanguage(row.Language),
		pgconv.TimePtrFromPgtype(row.NotifiedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
