//go:build unit

package commands

import (
	"testing"
	"time"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft(t *testing.T, guests ...string) reservation.Draft {
	t.Helper()
	contact, err := reservation.NewContact("Alex Morgan", "Alex@Example.com", "+1 555 0100")
	require.NoError(t, err)
	g, err := reservation.NewGuests(guests)
	require.NoError(t, err)
	waiver, err := reservation.NewWaiver(true, time.Date(2030, 6, 1, 12, 30, 0, 123456789, time.UTC), "203.0.113.7")
	require.NoError(t, err)
	return reservation.Draft{
		GameID:   "2030-06-14-riverside",
		Contact:  contact,
		Guests:   g,
		Waiver:   waiver,
		Language: reservation.LanguageSpanish,
	}
}

func TestCheckoutMetadata(t *testing.T) {
	code := reservation.ReconstructCode("PKP-7KQ2MZXA")

	t.Run("decode restores what was encoded", func(t *testing.T) {
		draft := testDraft(t, "Sam", "Jo")
		meta, err := encodeCheckoutMetadata(code, draft, 1500, "usd")
		require.NoError(t, err)
		assert.Equal(t, "3", meta[metaTotalPlayers])
		assert.Equal(t, `["Sam","Jo"]`, meta[metaGuests])

		got, err := decodeCheckoutMetadata(meta)
		require.NoError(t, err)
		assert.Equal(t, code, got.Code)
		assert.Equal(t, int64(1500), got.UnitAmount)
		assert.Equal(t, "usd", got.Currency)
		assert.Equal(t, draft.GameID, got.Draft.GameID)
		assert.Equal(t, "alex@example.com", got.Draft.Contact.Email().String())
		assert.Equal(t, draft.Contact.Name(), got.Draft.Contact.Name())
		assert.Equal(t, []string{"Sam", "Jo"}, got.Draft.Guests.Names())
		assert.True(t, draft.Waiver.AcceptedAt().Equal(got.Draft.Waiver.AcceptedAt()))
		assert.Equal(t, "203.0.113.7", got.Draft.Waiver.IP())
		assert.Equal(t, reservation.LanguageSpanish, got.Draft.Language)
	})

	t.Run("solo booking", func(t *testing.T) {
		meta, err := encodeCheckoutMetadata(code, testDraft(t), 0, "usd")
		require.NoError(t, err)

		got, err := decodeCheckoutMetadata(meta)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Draft.TotalPlayers())
		assert.Empty(t, got.Draft.Guests.Names())
	})

	t.Run("rejects tampered or missing fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(map[string]string)
		}{
			{name: "missing code", mutate: func(m map[string]string) { delete(m, metaCode) }},
			{name: "missing game", mutate: func(m map[string]string) { m[metaGameID] = "" }},
			{name: "bad email", mutate: func(m map[string]string) { m[metaHolderEmail] = "nope" }},
			{name: "guests not json", mutate: func(m map[string]string) { m[metaGuests] = "Sam,Jo" }},
			{name: "too many guests", mutate: func(m map[string]string) { m[metaGuests] = `["a","b","c","d","e"]` }},
			{name: "player count mismatch", mutate: func(m map[string]string) { m[metaTotalPlayers] = "2" }},
			{name: "bad waiver time", mutate: func(m map[string]string) { m[metaWaiverAt] = "yesterday" }},
			{name: "negative amount", mutate: func(m map[string]string) { m[metaUnitAmount] = "-1" }},
			{name: "no metadata at all", mutate: func(m map[string]string) { clear(m) }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				meta, err := encodeCheckoutMetadata(code, testDraft(t, "Sam", "Jo"), 1500, "usd")
				require.NoError(t, err)
				tt.mutate(meta)

				got, err := decodeCheckoutMetadata(meta)
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, ErrInvalidMetadata), "got %v", err)
			})
		}
	})
}

func TestFinalizeOutcomeNeedsRefund(t *testing.T) {
	refund := []FinalizeOutcome{
		FinalizeCapacityExceeded,
		FinalizeGameMissing,
		FinalizeGameClosed,
		FinalizeGameStarted,
		FinalizeHolderConflict,
		FinalizeInvalidMetadata,
	}
	for _, o := range refund {
		assert.True(t, o.NeedsRefund(), string(o))
	}
	for _, o := range []FinalizeOutcome{FinalizeProcessed, FinalizeDuplicate, FinalizeIgnored} {
		assert.False(t, o.NeedsRefund(), string(o))
	}
}
