// Package pgconv maps between domain values and the pgtype structs sqlc
// generates for nullable columns.
package pgconv

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func optional[T any](v T, valid bool) *T {
	if !valid {
		return nil
	}
	return &v
}

func TimeFromPgtype(ts pgtype.Timestamptz) time.Time { return ts.Time }

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrFromPgtype(ts pgtype.Timestamptz) *time.Time { return optional(ts.Time, ts.Valid) }

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return TimeToPgtype(*t)
}

func BoolPtrFromPgtype(b pgtype.Bool) *bool { return optional(b.Bool, b.Valid) }

func BoolPtrToPgtype(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

// StringPtrToPgtype stores both nil and "" as NULL, so optional ids such as a
// Stripe payment intent never end up as empty strings.
func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// IntToInt32 saturates instead of wrapping.
func IntToInt32(n int) int32 {
	return int32(max(math.MinInt32, min(n, math.MaxInt32))) // #nosec G115 -- clamped
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
