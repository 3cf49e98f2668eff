//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/infra/repository"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/tests/common/builder"
	repositorymock "pickup-rsvp/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func TestGameRepository_ClaimSpots(t *testing.T) {
	ctx := context.Background()
	gameID := "2030-06-14-riverside"
	claimed := builder.NewGameBuilder().WithCapacity(10).WithSpotsRemaining(7).BuildInfra()

	testCases := []struct {
		name       string
		players    int
		setupMock  func(*repositorymock.MockGameWriteQueries, *mockDBTX)
		wantSpots  int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:    "success: spots are decremented",
			players: 3,
			setupMock: func(m *repositorymock.MockGameWriteQueries, tx *mockDBTX) {
				m.EXPECT().ClaimSpots(ctx, tx, sqlc.ClaimSpotsParams{Players: 3, GameID: gameID}).Return(claimed, nil)
			},
			wantSpots: 7,
		},
		{
			name:    "error: guard rejected the claim",
			players: 4,
			setupMock: func(m *repositorymock.MockGameWriteQueries, tx *mockDBTX) {
				m.EXPECT().ClaimSpots(ctx, tx, gomock.Any()).Return(sqlc.Games{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindConditionFailed,
		},
		{
			name:    "error: database failure",
			players: 1,
			setupMock: func(m *repositorymock.MockGameWriteQueries, tx *mockDBTX) {
				m.EXPECT().ClaimSpots(ctx, tx, gomock.Any()).Return(sqlc.Games{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name:    "error: check constraint",
			players: 1,
			setupMock: func(m *repositorymock.MockGameWriteQueries, tx *mockDBTX) {
				m.EXPECT().ClaimSpots(ctx, tx, gomock.Any()).
					Return(sqlc.Games{}, &pgconn.PgError{Code: "23514", ConstraintName: infra.ConstraintSpotsWithinCapacity})
			},
			expectKind: infra.KindConditionFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockGameWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewGameRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			g, err := repo.ClaimSpots(ctx, mockDB, gameID, tc.players)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, g)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSpots, g.SpotsRemaining())
		})
	}
}

func TestGameRepository_ReleaseAndResize(t *testing.T) {
	ctx := context.Background()
	gameID := "2030-06-14-riverside"

	t.Run("release on a missing game is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGameWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ReleaseSpots(ctx, mockDB, sqlc.ReleaseSpotsParams{Players: 2, GameID: gameID}).Return(sqlc.Games{}, pgx.ErrNoRows)

		_, err := repository.NewGameRepository(mockQueries, mockDB).ReleaseSpots(ctx, mockDB, gameID, 2)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("resize below booked is a failed condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGameWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ResizeGame(ctx, mockDB, sqlc.ResizeGameParams{Capacity: 3, GameID: gameID}).Return(sqlc.Games{}, pgx.ErrNoRows)

		_, err := repository.NewGameRepository(mockQueries, mockDB).Resize(ctx, mockDB, gameID, 3)
		assert.True(t, infra.IsKind(err, infra.KindConditionFailed))
	})

	t.Run("resize returns the new capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGameWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		row := builder.NewGameBuilder().WithCapacity(14).WithSpotsRemaining(6).BuildInfra()
		mockQueries.EXPECT().ResizeGame(ctx, mockDB, sqlc.ResizeGameParams{Capacity: 14, GameID: gameID}).Return(row, nil)

		g, err := repository.NewGameRepository(mockQueries, mockDB).Resize(ctx, mockDB, gameID, 14)
		require.NoError(t, err)
		assert.Equal(t, 14, g.Capacity())
		assert.Equal(t, 6, g.SpotsRemaining())
	})

	t.Run("create with a taken id is a duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockGameWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		g, err := builder.NewGameBuilder().BuildDomain()
		require.NoError(t, err)
		mockQueries.EXPECT().CreateGame(ctx, mockDB, gomock.Any()).
			Return(sqlc.Games{}, &pgconn.PgError{Code: "23505", ConstraintName: "games_pkey"})

		err = repository.NewGameRepository(mockQueries, mockDB).Create(ctx, mockDB, g)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "games_pkey", infra.ConstraintOf(err))
	})
}
