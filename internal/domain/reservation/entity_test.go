//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestDraft(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		draft, err := builder.NewReservationBuilder().WithGuests("Sam", "Jo").BuildDraft()
		require.NoError(t, err)

		assert.Equal(t, 3, draft.TotalPlayers())
		assert.Equal(t, "alex@example.com", draft.Contact.Email().String())
		assert.Equal(t, "203.0.113.7", draft.Waiver.IP())
		assert.Equal(t, reservation.LanguageEnglish, draft.Language)
	})

	t.Run("contact and guest validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "four guests", mutate: func(b *builder.ReservationBuilder) { b.WithGuests("a", "b", "c", "d") }},
			{name: "five guests", mutate: func(b *builder.ReservationBuilder) { b.WithGuests("a", "b", "c", "d", "e") }, errIs: reservation.ErrTooManyGuests},
			{name: "blank guest name", mutate: func(b *builder.ReservationBuilder) { b.WithGuests("a", " ") }, errIs: reservation.ErrInvalidGuestName},
			{name: "blank holder name", mutate: func(b *builder.ReservationBuilder) { b.Name = "" }, errIs: reservation.ErrInvalidName},
			{name: "long holder name", mutate: func(b *builder.ReservationBuilder) { b.Name = strings.Repeat("n", reservation.MaxNameLength+1) }, errIs: reservation.ErrInvalidName},
			{name: "bad email", mutate: func(b *builder.ReservationBuilder) { b.WithEmail("not-an-email") }, errIs: reservation.ErrInvalidEmail},
			{name: "waiver not accepted", mutate: func(b *builder.ReservationBuilder) { b.WithoutWaiver() }, errIs: reservation.ErrWaiverNotAccepted},
		})
	})

	t.Run("email is normalized", func(t *testing.T) {
		draft, err := builder.NewReservationBuilder().WithEmail("  Alex@Example.COM ").BuildDraft()
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", draft.Contact.Email().String())
		assert.True(t, draft.Contact.Email().Matches("ALEX@example.com "))
		assert.False(t, draft.Contact.Email().Matches("other@example.com"))
	})

	t.Run("unparseable ip is dropped", func(t *testing.T) {
		draft, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.IP = "unknown" }).BuildDraft()
		require.NoError(t, err)
		assert.Empty(t, draft.Waiver.IP())
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		assert.Equal(t, reservation.LanguageSpanish, reservation.NewLanguage("es"))
		assert.Equal(t, reservation.LanguageEnglish, reservation.NewLanguage("fr"))
		assert.Equal(t, reservation.LanguageEnglish, reservation.NewLanguage(""))
	})
}

func TestNewReservation(t *testing.T) {
	t.Run("cash reservation is confirmed and unpaid", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().WithGuests("Sam").BuildCash()
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, reservation.PaymentCash, res.PaymentMethod())
		assert.Equal(t, reservation.PaymentPending, res.PaymentStatus())
		assert.Equal(t, 2, res.TotalPlayers())
		assert.Equal(t, int64(2000), res.TotalAmount())
		assert.Nil(t, res.RefundEligible())
		assert.Empty(t, res.Refs().SessionID)
	})

	t.Run("online reservation is paid and carries provider refs", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)

		assert.Equal(t, reservation.PaymentOnline, res.PaymentMethod())
		assert.Equal(t, reservation.PaymentPaid, res.PaymentStatus())
		want := reservation.PaymentRefs{SessionID: "cs_test_123", PaymentIntentID: "pi_test_123"}
		if diff := cmp.Diff(want, res.Refs()); diff != "" {
			t.Errorf("refs mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCancel(t *testing.T) {
	window := 24 * time.Hour
	gameStart := time.Date(2030, 6, 14, 18, 0, 0, 0, time.UTC)

	t.Run("online cancellation outside the window is refund eligible", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)

		now := gameStart.Add(-48 * time.Hour)
		require.NoError(t, res.Cancel(now, gameStart, window))

		assert.True(t, res.IsCancelled())
		require.NotNil(t, res.RefundEligible())
		assert.True(t, *res.RefundEligible())
		assert.Equal(t, reservation.PaymentPaid, res.PaymentStatus())
		require.NotNil(t, res.CancelledAt())
		assert.Equal(t, now, *res.CancelledAt())
	})

	t.Run("exactly at the window boundary is eligible", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(gameStart.Add(-window), gameStart, window))
		assert.True(t, res.IsRefundEligible())
	})

	t.Run("online cancellation inside the window is not eligible", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(gameStart.Add(-window+time.Second), gameStart, window))
		require.NotNil(t, res.RefundEligible())
		assert.False(t, *res.RefundEligible())
	})

	t.Run("cash cancellation voids the pending payment", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildCash()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(gameStart.Add(-48*time.Hour), gameStart, window))
		assert.Equal(t, reservation.PaymentCancelled, res.PaymentStatus())
		assert.Nil(t, res.RefundEligible())
	})

	t.Run("second cancel fails and keeps the frozen flag", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(gameStart.Add(-48*time.Hour), gameStart, window))

		err = res.Cancel(gameStart.Add(-time.Hour), gameStart, window)
		assert.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
		assert.True(t, res.IsRefundEligible())
	})

	t.Run("cannot cancel once the game started", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		assert.ErrorIs(t, res.Cancel(gameStart, gameStart, window), reservation.ErrGameStarted)
		assert.False(t, res.IsCancelled())
	})
}

func TestRefund(t *testing.T) {
	window := 24 * time.Hour
	gameStart := time.Date(2030, 6, 14, 18, 0, 0, 0, time.UTC)
	early := gameStart.Add(-72 * time.Hour)

	t.Run("eligible cancellation can be refunded once", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(early, gameStart, window))

		require.NoError(t, res.CheckRefundable())
		require.NoError(t, res.MarkRefunded("re_123", early))
		assert.Equal(t, reservation.PaymentRefunded, res.PaymentStatus())
		assert.Equal(t, "re_123", res.Refs().RefundID)

		assert.ErrorIs(t, res.MarkRefunded("re_456", early), reservation.ErrAlreadyRefunded)
	})

	t.Run("live reservation is not refundable", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		assert.ErrorIs(t, res.CheckRefundable(), reservation.ErrNotRefundable)
	})

	t.Run("late cancellation is not refundable", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildOnline()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(gameStart.Add(-time.Hour), gameStart, window))
		assert.ErrorIs(t, res.CheckRefundable(), reservation.ErrNotRefundable)
	})

	t.Run("cash reservation is not refundable", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildCash()
		require.NoError(t, err)
		require.NoError(t, res.Cancel(early, gameStart, window))
		assert.ErrorIs(t, res.CheckRefundable(), reservation.ErrNotRefundable)
	})
}

func TestMarkNoShow(t *testing.T) {
	gameStart := time.Date(2030, 6, 14, 18, 0, 0, 0, time.UTC)

	res, err := builder.NewReservationBuilder().BuildCash()
	require.NoError(t, err)

	assert.ErrorIs(t, res.MarkNoShow(gameStart.Add(-time.Minute), gameStart), reservation.ErrInvalidTransition)
	require.NoError(t, res.MarkNoShow(gameStart.Add(10*time.Minute), gameStart))
	assert.Equal(t, reservation.StatusNoShow, res.Status())
	assert.ErrorIs(t, res.MarkNoShow(gameStart.Add(20*time.Minute), gameStart), reservation.ErrInvalidTransition)
}

func TestRefundEligible(t *testing.T) {
	start := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	assert.True(t, reservation.RefundEligible(start, start.Add(-25*time.Hour), window))
	assert.True(t, reservation.RefundEligible(start, start.Add(-24*time.Hour), window))
	assert.False(t, reservation.RefundEligible(start, start.Add(-23*time.Hour), window))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewReservationBuilder().With(tc.mutate).BuildDraft()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
