package converter

import (
	"pickup-rsvp/internal/domain/operator"
	sqlc "pickup-rsvp/internal/infra/sqlc/generated"
	"pickup-rsvp/internal/pkg/pgconv"
)

func OperatorFromRow(row sqlc.Operators) (*operator.Operator, error) {
	email, err := operator.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := operator.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return operator.ReconstructOperator(
		row.ID,
		email,
		row.PasswordHash,
		role,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
