//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tokens mints operator tokens with the same secret the server verifies.
type Tokens struct {
	live    *jwt.Service
	expired *jwt.Service
}

func NewTokens(cfg config.JWTConfig) *Tokens {
	hoursAgo := func() time.Time { return time.Now().Add(-3 * time.Hour) }
	return &Tokens{
		live:    jwt.NewService(cfg.Secret, cfg.TTL),
		expired: jwt.NewService(cfg.Secret, time.Hour, jwt.WithClock(hoursAgo)),
	}
}

func (k *Tokens) For(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	token, err := k.live.Issue(operatorID, role.String())
	require.NoError(t, err)
	return token
}

func (k *Tokens) Expired(t *testing.T, operatorID uuid.UUID, role operator.Role) string {
	t.Helper()
	token, err := k.expired.Issue(operatorID, role.String())
	require.NoError(t, err)
	return token
}
