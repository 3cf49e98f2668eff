package repository

import (
	"context"
	"time"

	"pickup-rsvp/internal/domain/reservation"
	"pickup-rsvp/internal/domain/waitlist"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/infra/repository/converter"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

type WaitlistWriteQueries interface {
	CreateWaitlistEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateWaitlistEntryParams) (sqlc.WaitlistEntries, error)
	GetWaitlistEntryByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.GetWaitlistEntryByEmailParams) (sqlc.WaitlistEntries, error)
	GetWaitlistPosition(ctx context.Context, db sqlc.DBTX, arg sqlc.GetWaitlistPositionParams) (int32, error)
	PromoteNextWaitlistEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.PromoteNextWaitlistEntryParams) (sqlc.WaitlistEntries, error)
	DeleteWaitlistEntryByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteWaitlistEntryByEmailParams) error
	ListWaitlistByGame(ctx context.Context, db sqlc.DBTX, gameID string) ([]sqlc.WaitlistEntries, error)
}

type WaitlistRepository struct {
	queries WaitlistWriteQueries
	db      sqlc.DBTX
}

func NewWaitlistRepository(queries *sqlc.Queries, db sqlc.DBTX) *WaitlistRepository {
	return &WaitlistRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WaitlistRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, entry *waitlist.Entry) (int, error) {
	row, err := r.queries.CreateWaitlistEntry(ctx, tx, converter.WaitlistEntryToCreateParams(entry))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create waitlist entry", err)
	}

	pos, err := r.queries.GetWaitlistPosition(ctx, tx, sqlc.GetWaitlistPositionParams{
		GameID:    row.GameID,
		CreatedAt: row.CreatedAt,
		Seq:       row.Seq,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute waitlist position", err)
	}
	return int(pos), nil
}

func (r *WaitlistRepository) FindByEmail(ctx context.Context, tx sqlc.DBTX, gameID string, email reservation.Email) (*waitlist.Entry, error) {
	row, err := r.queries.GetWaitlistEntryByEmail(ctx, tx, sqlc.GetWaitlistEntryByEmailParams{
		GameID: gameID,
		Email:  email.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waitlist entry", err)
	}
	return converter.WaitlistEntryFromRow(row), nil
}

func (r *WaitlistRepository) PromoteNext(ctx context.Context, tx sqlc.DBTX, gameID string, now time.Time) (*waitlist.Entry, error) {
	row, err := r.queries.PromoteNextWaitlistEntry(ctx, tx, sqlc.PromoteNextWaitlistEntryParams{
		NotifiedAt: pgconv.TimeToPgtype(now),
		GameID:     gameID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waitlist is empty", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to promote waitlist entry", err)
	}
	return converter.WaitlistEntryFromRow(row), nil
}

func (r *WaitlistRepository) Remove(ctx context.Context, tx sqlc.DBTX, gameID string, email reservation.Email) error {
	err := r.queries.DeleteWaitlistEntryByEmail(ctx, tx, sqlc.DeleteWaitlistEntryByEmailParams{
		GameID: gameID,
		Email:  email.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to remove waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) ListByGame(ctx context.Context, tx sqlc.DBTX, gameID string) ([]*waitlist.Entry, error) {
	rows, err := r.queries.ListWaitlistByGame(ctx, tx, gameID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist", err)
	}
	out := make([]*waitlist.Entry, len(rows))
	for i, row := range rows {
		out[i] = converter.WaitlistEntryFromRow(row)
	}
	return out, nil
}
