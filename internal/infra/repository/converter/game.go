package converter

import (
	"time"

	"pickup-rsvp/internal/domain/game"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

func GameToCreateParams(g *game.Game) sqlc.CreateGameParams {
	s := g.Schedule()
	return sqlc.CreateGameParams{
		GameID:          g.ID().String(),
		StartsAt:        pgconv.TimeToPgtype(s.StartsAt()),
		DurationMinutes: pgconv.IntToInt32(int(s.Duration() / time.Minute)),
		Venue:           s.Venue(),
		Address:         s.Address(),
		PriceCents:      g.Price().AmountCents(),
		Currency:        g.Price().Currency(),
		Capacity:        pgconv.IntToInt32(g.Capacity()),
		Status:          g.Status().String(),
		Notes:           g.Notes(),
		Now:             pgconv.TimeToPgtype(g.CreatedAt()),
	}
}

func GameToUpdateParams(g *game.Game) sqlc.UpdateGameDetailsParams {
	s := g.Schedule()
	return sqlc.UpdateGameDetailsParams{
		StartsAt:        pgconv.TimeToPgtype(s.StartsAt()),
		DurationMinutes: pgconv.IntToInt32(int(s.Duration() / time.Minute)),
		Venue:           s.Venue(),
		Address:         s.Address(),
		PriceCents:      g.Price().AmountCents(),
		Currency:        g.Price().Currency(),
		Notes:           g.Notes(),
		Status:          g.Status().String(),
		Now:             pgconv.TimeToPgtype(g.UpdatedAt()),
		GameID:          g.ID().String(),
	}
}

func GameFromRow(row sqlc.Games) *game.Game {
	return game.ReconstructGame(
		game.ReconstructID(row.GameID),
		game.ReconstructSchedule(
			pgconv.TimeFromPgtype(row.StartsAt),
			time.Duration(row.DurationMinutes)*time.Minute,
			row.Venue,
			row.Address,
		),
		game.ReconstructPrice(row.PriceCents, row.Currency),
		int(row.Capacity),
		int(row.SpotsRemaining),
		game.Status(row.Status),
		row.Notes,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
