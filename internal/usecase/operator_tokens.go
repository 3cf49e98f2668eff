package usecase

import (
	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnknownRole = errs.New("token carries an unknown role")

// Identity is who an admin request acts as.
type Identity struct {
	OperatorID uuid.UUID
	Role       operator.Role
}

// OperatorTokens turns a bearer token into an Identity for the auth middleware.
type OperatorTokens interface {
	Authenticate(token string) (Identity, error)
}

type jwtOperatorTokens struct {
	tokens *jwt.Service
}

func NewOperatorTokens(tokens *jwt.Service) OperatorTokens {
	return jwtOperatorTokens{tokens: tokens}
}

func (j jwtOperatorTokens) Authenticate(token string) (Identity, error) {
	claims, err := j.tokens.Parse(token)
	if err != nil {
		return Identity{}, err
	}
	id, err := claims.OperatorID()
	if err != nil {
		return Identity{}, err
	}
	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return Identity{}, errs.Mark(err, ErrUnknownRole)
	}
	return Identity{OperatorID: id, Role: role}, nil
}
