// source: operators.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOperator = `-- name: CreateOperator :exec
INSERT INTO operators (id, email, password_hash, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateOperatorParams struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateOperator(ctx context.Context, db DBTX, arg CreateOperatorParams) error {
	_, err := db.Exec(ctx, createOperator,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
	)
	return err
}

const getOperatorByEmail = `-- name: GetOperatorByEmail :one
SELECT id, email, password_hash, role, is_active, last_login, created_at FROM operators
WHERE email = $1
`

func (q *Queries) GetOperatorByEmail(ctx context.Context, db DBTX, email string) (Operators, error) {
	row := db.QueryRow(ctx, getOperatorByEmail, email)
	var i Operators
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
	)
	return i, err
}

const getOperatorByID = `-- name: GetOperatorByID :one
SELECT id, email, password_hash, role, is_active, last_login, created_at FROM operators
WHERE id = $1
`

func (q *Queries) GetOperatorByID(ctx context.Context, db DBTX, id uuid.UUID) (Operators, error) {
	row := db.QueryRow(ctx, getOperatorByID, id)
	var i Operators
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
	)
	return i, err
}

const updateOperatorLastLogin = `-- name: UpdateOperatorLastLogin :exec
UPDATE operators
SET last_login = $1
WHERE id = $2
`

type UpdateOperatorLastLoginParams struct {
	LastLogin pgtype.Timestamptz `json:"last_login"`
	ID        uuid.UUID          `json:"id"`
}

func (q *Queries) UpdateOperatorLastLogin(ctx context.Context, db DBTX, arg UpdateOperatorLastLoginParams) error {
	_, err := db.Exec(ctx, updateOperatorLastLogin, arg.LastLogin, arg.ID)
	return err
}
