//go:build unit || e2e

// Package dbtest seeds and inspects the booking tables directly, bypassing the
// use cases, so tests can set up states the API would refuse to create.
package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"pickup-rsvp/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Conn is satisfied by a pool, a single connection or a transaction.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword logs in every operator CreateTestOperator makes.
const TestPassword = "pickup-password"

// hashed at the cheapest cost so suites do not pay for bcrypt on every seed
var testPasswordHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// bookingTables lists every table the schema creates; ResetDB empties them all.
var bookingTables = []string{"payment_events", "waitlist_entries", "reservations", "games", "operators"}

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(bookingTables, ", ")+" CASCADE")
	return err
}

// scalar reads one value and fails the test if the row is missing.
func scalar[T any](t *testing.T, db Conn, query string, args ...any) T {
	t.Helper()
	var v T
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&v), query)
	return v
}

// CreateTestOperator returns the id of the operator with that email, creating
// an active one if it does not exist yet.
func CreateTestOperator(t *testing.T, db Conn, email, role string) uuid.UUID {
	t.Helper()
	return scalar[uuid.UUID](t, db, `
		INSERT INTO operators (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		uuid.New(), strings.ToLower(email), testPasswordHash, role)
}

func DeactivateOperator(t *testing.T, db Conn, operatorID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE operators SET is_active = false WHERE id = $1", operatorID)
	require.NoError(t, err)
}

// CreateTestGame inserts the game exactly as built, spot counts included.
func CreateTestGame(t *testing.T, db Conn, b *builder.GameBuilder) string {
	t.Helper()
	g := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO games (game_id, starts_at, duration_minutes, venue, address, price_cents, currency,
		                   capacity, spots_remaining, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		g.GameID, g.StartsAt, g.DurationMinutes, g.Venue, g.Address, g.PriceCents, g.Currency,
		g.Capacity, g.SpotsRemaining, g.Status, g.Notes, g.CreatedAt, g.UpdatedAt)
	require.NoError(t, err)
	return g.GameID
}

func SpotsRemaining(t *testing.T, db Conn, gameID string) int {
	t.Helper()
	return scalar[int](t, db, "SELECT spots_remaining FROM games WHERE game_id = $1", gameID)
}

func GameStatus(t *testing.T, db Conn, gameID string) string {
	t.Helper()
	return scalar[string](t, db, "SELECT status FROM games WHERE game_id = $1", gameID)
}

// LivePlayers sums the players of every reservation that still holds spots.
func LivePlayers(t *testing.T, db Conn, gameID string) int {
	t.Helper()
	return scalar[int](t, db,
		"SELECT COALESCE(SUM(total_players), 0)::int FROM reservations WHERE game_id = $1 AND status <> 'cancelled'", gameID)
}

func CountReservations(t *testing.T, db Conn, gameID string) int {
	t.Helper()
	return scalar[int](t, db, "SELECT count(*)::int FROM reservations WHERE game_id = $1", gameID)
}

func CountPaymentEvents(t *testing.T, db Conn, eventID string) int {
	t.Helper()
	return scalar[int](t, db, "SELECT count(*)::int FROM payment_events WHERE event_id = $1", eventID)
}

func ReservationStatus(t *testing.T, db Conn, code string) (status, paymentStatus string) {
	t.Helper()
	err := db.QueryRow(context.Background(),
		"SELECT status, payment_status FROM reservations WHERE confirmation_code = $1", code).Scan(&status, &paymentStatus)
	require.NoError(t, err)
	return status, paymentStatus
}

func WaitlistNotified(t *testing.T, db Conn, gameID, email string) bool {
	t.Helper()
	return scalar[bool](t, db,
		"SELECT notified FROM waitlist_entries WHERE game_id = $1 AND email = $2", gameID, strings.ToLower(email))
}
