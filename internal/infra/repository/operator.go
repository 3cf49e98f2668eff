package repository

import (
	"context"
	"time"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/infra"
	"pickup-rsvp/internal/infra/repository/converter"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OperatorQueries interface {
	CreateOperator(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOperatorParams) error
	GetOperatorByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Operators, error)
	GetOperatorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Operators, error)
	UpdateOperatorLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOperatorLastLoginParams) error
}

type OperatorRepository struct {
	queries OperatorQueries
	db      sqlc.DBTX
}

func NewOperatorRepository(queries *sqlc.Queries, db sqlc.DBTX) *OperatorRepository {
	return &OperatorRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OperatorRepository) Create(ctx context.Context, tx sqlc.DBTX, op *operator.Operator) error {
	err := r.queries.CreateOperator(ctx, tx, sqlc.CreateOperatorParams{
		ID:           op.ID(),
		Email:        op.Email().Value(),
		PasswordHash: op.PasswordHash(),
		Role:         op.Role().String(),
		IsActive:     op.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(op.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create operator", err)
	}
	return nil
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, tx sqlc.DBTX, email operator.Email) (*operator.Operator, error) {
	row, err := r.queries.GetOperatorByEmail(ctx, tx, email.Value())
	return toOperator(row, err)
}

func (r *OperatorRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*operator.Operator, error) {
	row, err := r.queries.GetOperatorByID(ctx, tx, id)
	return toOperator(row, err)
}

func (r *OperatorRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateOperatorLastLogin(ctx, tx, sqlc.UpdateOperatorLastLoginParams{
		LastLogin: pgconv.TimeToPgtype(at),
		ID:        id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update operator last login", err)
	}
	return nil
}

func toOperator(row sqlc.Operators, err error) (*operator.Operator, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operator", err)
	}
	op, err := converter.OperatorFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored operator is invalid", err)
	}
	return op, nil
}
