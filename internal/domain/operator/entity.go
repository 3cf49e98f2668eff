package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a person with access to the admin surface.
type Operator struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
}

func NewOperator(email Email, passwordHash string, role Role, now time.Time) *Operator {
	return &Operator{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}
}

func ReconstructOperator(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	lastLogin *time.Time,
	createdAt time.Time,
) *Operator {
	return &Operator{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
	}
}

func (o *Operator) ID() uuid.UUID         { return o.id }
func (o *Operator) Email() Email          { return o.email }
func (o *Operator) PasswordHash() string  { return o.passwordHash }
func (o *Operator) Role() Role            { return o.role }
func (o *Operator) IsActive() bool        { return o.isActive }
func (o *Operator) LastLogin() *time.Time { return o.lastLogin }
func (o *Operator) CreatedAt() time.Time  { return o.createdAt }
