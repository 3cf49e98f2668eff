//go:build unit

package game_test

import (
	"strings"
	"testing"
	"time"

	"pickup-rsvp/internal/domain/game"
	"pickup-rsvp/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GameBuilder)
	errIs  error
}

func TestGame(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewGameBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.GameID, actual.ID().String())
		assert.Equal(t, game.StatusOpen, actual.Status())
		assert.Equal(t, 10, actual.Capacity())
		assert.Equal(t, 10, actual.SpotsRemaining())
		assert.Equal(t, 0, actual.BookedPlayers())
		assert.Equal(t, "usd", actual.Price().Currency())
		assert.Equal(t, b.StartsAt.Add(90*time.Minute), actual.Schedule().EndsAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "simple slug", mutate: func(b *builder.GameBuilder) { b.WithID("sat-riverside_2") }},
			{name: "empty", mutate: func(b *builder.GameBuilder) { b.WithID("  ") }, errIs: game.ErrInvalidID},
			{name: "leading dash", mutate: func(b *builder.GameBuilder) { b.WithID("-game") }, errIs: game.ErrInvalidID},
			{name: "contains space", mutate: func(b *builder.GameBuilder) { b.WithID("sat game") }, errIs: game.ErrInvalidID},
			{name: "too long", mutate: func(b *builder.GameBuilder) { b.WithID(strings.Repeat("a", game.MaxIDLength+1)) }, errIs: game.ErrInvalidID},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "minimum", mutate: func(b *builder.GameBuilder) { b.WithCapacity(1) }},
			{name: "maximum", mutate: func(b *builder.GameBuilder) { b.WithCapacity(game.MaxCapacity) }},
			{name: "zero", mutate: func(b *builder.GameBuilder) { b.WithCapacity(0) }, errIs: game.ErrInvalidCapacity},
			{name: "above maximum", mutate: func(b *builder.GameBuilder) { b.WithCapacity(game.MaxCapacity + 1) }, errIs: game.ErrInvalidCapacity},
		})
	})

	t.Run("schedule and price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "free game", mutate: func(b *builder.GameBuilder) { b.WithPrice(0) }},
			{name: "negative price", mutate: func(b *builder.GameBuilder) { b.WithPrice(-1) }, errIs: game.ErrNegativePrice},
			{name: "bad currency", mutate: func(b *builder.GameBuilder) { b.Currency = "dollars" }, errIs: game.ErrInvalidCurrency},
			{name: "zero start", mutate: func(b *builder.GameBuilder) { b.WithStartsAt(time.Time{}) }, errIs: game.ErrInvalidSchedule},
			{name: "zero duration", mutate: func(b *builder.GameBuilder) { b.DurationMinutes = 0 }, errIs: game.ErrInvalidSchedule},
			{name: "blank venue", mutate: func(b *builder.GameBuilder) { b.Venue = " " }, errIs: game.ErrInvalidVenue},
		})
	})
}

func TestCheckBookable(t *testing.T) {
	now := time.Now()

	t.Run("open future game", func(t *testing.T) {
		g := builder.NewGameBuilder().BuildReconstructed()
		assert.NoError(t, g.CheckBookable(now))
	})

	t.Run("full game passes the status check", func(t *testing.T) {
		g := builder.NewGameBuilder().AsFull().BuildReconstructed()
		assert.NoError(t, g.CheckBookable(now))
		assert.False(t, g.HasRoomFor(1))
	})

	t.Run("terminal statuses are closed", func(t *testing.T) {
		for _, st := range []game.Status{game.StatusCancelled, game.StatusCompleted, game.StatusInProgress} {
			g := builder.NewGameBuilder().WithStatus(st).BuildReconstructed()
			assert.ErrorIs(t, g.CheckBookable(now), game.ErrGameClosed, st.String())
		}
	})

	t.Run("started game", func(t *testing.T) {
		g := builder.NewGameBuilder().WithStartsAt(now).BuildReconstructed()
		assert.ErrorIs(t, g.CheckBookable(now), game.ErrGameStarted)
	})
}

func TestHasRoomFor(t *testing.T) {
	g := builder.NewGameBuilder().WithCapacity(10).WithSpotsRemaining(3).BuildReconstructed()

	assert.True(t, g.HasRoomFor(3))
	assert.False(t, g.HasRoomFor(4))
	assert.False(t, g.HasRoomFor(0))
	assert.Equal(t, 7, g.BookedPlayers())
}

func TestResize(t *testing.T) {
	g := builder.NewGameBuilder().WithCapacity(10).WithSpotsRemaining(4).BuildReconstructed()

	tests := []struct {
		name      string
		capacity  int
		wantSpots int
		errIs     error
	}{
		{name: "grow", capacity: 14, wantSpots: 8},
		{name: "shrink to booked", capacity: 6, wantSpots: 0},
		{name: "below booked", capacity: 5, errIs: game.ErrCapacityBelowBooked},
		{name: "invalid", capacity: 0, errIs: game.ErrInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spots, err := g.Resize(tt.capacity)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSpots, spots)
		})
	}
}

func TestChangeStatus(t *testing.T) {
	now := time.Now()

	t.Run("cancel an open game", func(t *testing.T) {
		g := builder.NewGameBuilder().BuildReconstructed()
		require.NoError(t, g.ChangeStatus(game.StatusCancelled, now))
		assert.Equal(t, game.StatusCancelled, g.Status())
		assert.Equal(t, now, g.UpdatedAt())
	})

	t.Run("cancelled is final", func(t *testing.T) {
		g := builder.NewGameBuilder().AsCancelled().BuildReconstructed()
		assert.ErrorIs(t, g.ChangeStatus(game.StatusOpen, now), game.ErrGameClosed)
		assert.NoError(t, g.ChangeStatus(game.StatusCancelled, now))
	})

	t.Run("open cannot be forced on a full game", func(t *testing.T) {
		g := builder.NewGameBuilder().AsFull().BuildReconstructed()
		require.NoError(t, g.ChangeStatus(game.StatusOpen, now))
		assert.Equal(t, game.StatusFull, g.Status())
	})

	t.Run("full cannot be forced on a game with room", func(t *testing.T) {
		g := builder.NewGameBuilder().BuildReconstructed()
		require.NoError(t, g.ChangeStatus(game.StatusFull, now))
		assert.Equal(t, game.StatusOpen, g.Status())
	})

	t.Run("in progress reopens nothing", func(t *testing.T) {
		g := builder.NewGameBuilder().BuildReconstructed()
		require.NoError(t, g.ChangeStatus(game.StatusInProgress, now))
		assert.True(t, g.Status().IsTerminal())
	})

	t.Run("unknown status", func(t *testing.T) {
		g := builder.NewGameBuilder().BuildReconstructed()
		assert.ErrorIs(t, g.ChangeStatus(game.Status("paused"), now), game.ErrInvalidStatus)
	})
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current game.Status
		spots   int
		want    game.Status
	}{
		{game.StatusOpen, 3, game.StatusOpen},
		{game.StatusOpen, 0, game.StatusFull},
		{game.StatusFull, 0, game.StatusFull},
		{game.StatusFull, 2, game.StatusOpen},
		{game.StatusScheduled, 2, game.StatusScheduled},
		{game.StatusScheduled, 0, game.StatusFull},
		{game.StatusCancelled, 5, game.StatusCancelled},
		{game.StatusCompleted, 0, game.StatusCompleted},
		{game.StatusInProgress, 5, game.StatusInProgress},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, game.NextStatus(tt.current, tt.spots), "%s with %d spots", tt.current, tt.spots)
	}
}

func TestReschedule(t *testing.T) {
	g := builder.NewGameBuilder().WithCapacity(10).WithSpotsRemaining(4).BuildReconstructed()
	later := time.Now().Add(96 * time.Hour).Truncate(time.Second)
	schedule, err := game.NewSchedule(later, time.Hour, "Eastside Turf", "")
	require.NoError(t, err)
	price, err := game.NewPrice(1500, "USD")
	require.NoError(t, err)

	g.Reschedule(schedule, price, "moved indoors", later)

	assert.Equal(t, later, g.StartsAt())
	assert.Equal(t, "Eastside Turf", g.Schedule().Venue())
	assert.Equal(t, "usd", g.Price().Currency())
	assert.Equal(t, int64(4500), g.Price().Times(3))
	assert.Equal(t, 4, g.SpotsRemaining())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewGameBuilder().With(tc.mutate)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
