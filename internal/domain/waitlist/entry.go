package waitlist

import (
	"time"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyNotified = errs.New("waitlist entry has already been notified")

// Entry is a holder queued for a full game. Promotion only notifies them;
// it does not hold a spot.
type Entry struct {
	id         uuid.UUID
	gameID     string
	contact    reservation.Contact
	language   reservation.Language
	notified   bool
	notifiedAt *time.Time
	createdAt  time.Time
}

func NewEntry(gameID string, contact reservation.Contact, language reservation.Language, now time.Time) *Entry {
	return &Entry{
		id:        uuid.New(),
		gameID:    gameID,
		contact:   contact,
		language:  language,
		createdAt: now,
	}
}

func ReconstructEntry(
	id uuid.UUID,
	gameID string,
	contact reservation.Contact,
	language reservation.Language,
	notifiedAt *time.Time,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:         id,
		gameID:     gameID,
		contact:    contact,
		language:   language,
		notified:   notifiedAt != nil,
		notifiedAt: notifiedAt,
		createdAt:  createdAt,
	}
}

func (e *Entry) ID() uuid.UUID                  { return e.id }
func (e *Entry) GameID() string                 { return e.gameID }
func (e *Entry) Contact() reservation.Contact   { return e.contact }
func (e *Entry) Language() reservation.Language { return e.language }
func (e *Entry) Notified() bool                 { return e.notified }
func (e *Entry) NotifiedAt() *time.Time         { return e.notifiedAt }
func (e *Entry) CreatedAt() time.Time           { return e.createdAt }

func (e *Entry) MarkNotified(now time.Time) error {
	if e.notified {
		return ErrAlreadyNotified
	}
	e.notified = true
	at := now
	e.notifiedAt = &at
	return nil
}
