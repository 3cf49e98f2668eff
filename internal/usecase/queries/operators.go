package queries

import (
	"context"

	"pickup-rsvp/internal/infra"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=operators.go -destination=../../../tests/mock/queries/operators_mock.go -package=queriesmock
type OperatorQueries interface {
	GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error)
}

type OperatorReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*OperatorView, error)
}

type operatorQueriesImpl struct {
	db        sqlc.DBTX
	readStore OperatorReadStore
}

func NewOperatorQueries(db sqlc.DBTX, readStore OperatorReadStore) OperatorQueries {
	return &operatorQueriesImpl{
		db:        db,
		readStore: readStore,
	}
}

func (q *operatorQueriesImpl) GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error) {
	op, err := q.readStore.FindByID(ctx, q.db, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}

	if !op.IsActive {
		return nil, ErrOperatorInactive
	}

	return op, nil
}
