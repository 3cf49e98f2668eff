package readstore

import (
	"context"

	"pickup-rsvp/internal/infra"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
	"pickup-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
)

type OperatorViewQueries interface {
	GetOperatorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Operators, error)
}

type OperatorReadStore struct {
	queries OperatorViewQueries
}

func NewOperatorReadStore(queries OperatorViewQueries) *OperatorReadStore {
	return &OperatorReadStore{queries: queries}
}

func (r *OperatorReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.OperatorView, error) {
	row, err := r.queries.GetOperatorByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operator by ID", err)
	}

	return &queries.OperatorView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}, nil
}
