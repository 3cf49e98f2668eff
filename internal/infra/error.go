package infra

import (
	"pickup-rsvp/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepositoryErrorKind classifies storage failures so use cases can react
// without knowing Postgres error codes.
type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConditionFailed    RepositoryErrorKind = "CONDITION_FAILED"
)

// Constraint names the booking flow tells apart.
const (
	ConstraintReservationsPK      = "reservations_pkey"
	ConstraintLiveHolder          = "reservations_live_holder_uidx"
	ConstraintStripeSession       = "reservations_stripe_session_uidx"
	ConstraintWaitlistGameEmail   = "waitlist_entries_game_email_key"
	ConstraintSpotsWithinCapacity = "games_spots_within_capacity"
)

var kindByPgCode = map[string]RepositoryErrorKind{
	"23505": KindDuplicateKey,
	"23503": KindForeignKeyViolated,
	"23514": KindConditionFailed,
}

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	cause      error
}

func (e *RepositoryError) Error() string { return string(e.Kind) + ": " + e.cause.Error() }

func (e *RepositoryError) Unwrap() error { return e.cause }

// WrapRepoErr attaches msg and a kind to err. The kind is the explicit one if
// given, else derived from pgx: no rows is NOT_FOUND, known constraint codes
// map to their kind, and anything else is DB_FAILURE. err may be nil for
// failures detected without a driver error, such as a guarded update that
// matched nothing.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	e := &RepositoryError{Kind: KindDBFailure}

	var pgErr *pgconn.PgError
	switch {
	case errs.As(err, &pgErr):
		e.Constraint = pgErr.ConstraintName
		if k, ok := kindByPgCode[pgErr.Code]; ok {
			e.Kind = k
		}
	case errs.Is(err, pgx.ErrNoRows):
		e.Kind = KindNotFound
	}
	if len(kind) > 0 {
		e.Kind = kind[0]
	}

	if err == nil {
		e.cause = errs.New(msg)
	} else {
		e.cause = errs.Wrap(err, msg)
	}
	return e
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e *RepositoryError
	return errs.As(err, &e) && e.Kind == kind
}

// ConstraintOf returns the violated constraint name, or "".
func ConstraintOf(err error) string {
	var e *RepositoryError
	if errs.As(err, &e) {
		return e.Constraint
	}
	return ""
}
