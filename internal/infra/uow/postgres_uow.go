package uow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"pickup-rsvp/internal/infra/repository"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxTxAttempts = 4
	retryBase     = 50 * time.Millisecond
)

// Postgres error codes worth replaying the whole transaction for.
var retryableCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

var (
	errTxBegin     = errs.New("failed to begin transaction")
	errTxCommit    = errs.New("failed to commit transaction")
	errTxExhausted = errs.New("transaction still conflicting after retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q}
}

// Within runs fn in a read committed transaction. Booking writes rely on
// guarded updates and row locks, so read committed is enough. fn may run more
// than once and must not leak state between attempts.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == maxTxAttempts {
			break
		}

		wait := backoff(attempt)
		slog.WarnContext(ctx, "transaction conflict, retrying",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	slog.ErrorContext(ctx, "transaction gave up", "attempts", maxTxAttempts, "error", err.Error())
	return errs.Mark(err, errTxExhausted)
}

// WithinReadOnly gives fn one repeatable read snapshot, so a lookup that
// touches several tables sees them at the same instant.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.attempt(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	ptx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTxBegin)
	}
	defer func() {
		// no-op once committed
		if rbErr := ptx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: ptx, q: u.q}); err != nil {
		return err
	}
	if err := ptx.Commit(ctx); err != nil {
		return errs.Mark(err, errTxCommit)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	return errs.As(err, &pgErr) && retryableCodes[pgErr.Code]
}

// backoff doubles per attempt with up to 25% jitter so racing bookings spread out.
func backoff(attempt int) time.Duration {
	d := retryBase << (attempt - 1)
	return d + rand.N(d/4+1)
}

// pgTx hands out repositories bound to one transaction, built on first use.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	games         shared.GameRepository
	reservations  shared.ReservationRepository
	waitlist      shared.WaitlistRepository
	paymentEvents shared.PaymentEventRepository
	operators     shared.OperatorRepository
}

func (t *pgTx) DB() sqlc.DBTX { return t.dbtx }

func (t *pgTx) Games() shared.GameRepository {
	if t.games == nil {
		t.games = repository.NewGameRepository(t.q, t.dbtx)
	}
	return t.games
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) Waitlist() shared.WaitlistRepository {
	if t.waitlist == nil {
		t.waitlist = repository.NewWaitlistRepository(t.q, t.dbtx)
	}
	return t.waitlist
}

func (t *pgTx) PaymentEvents() shared.PaymentEventRepository {
	if t.paymentEvents == nil {
		t.paymentEvents = repository.NewPaymentEventRepository(t.q, t.dbtx)
	}
	return t.paymentEvents
}

func (t *pgTx) Operators() shared.OperatorRepository {
	if t.operators == nil {
		t.operators = repository.NewOperatorRepository(t.q, t.dbtx)
	}
	return t.operators
}
