//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	operatorID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		svc := NewService("secret", time.Hour)
		token, err := svc.Issue(operatorID, "admin")
		require.NoError(t, err)

		claims, err := svc.Parse(token)
		require.NoError(t, err)
		id, err := claims.OperatorID()
		require.NoError(t, err)
		assert.Equal(t, operatorID, id)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, gojwt.ClaimStrings{audience}, claims.Audience)
		assert.Equal(t, time.Hour, svc.TTL())
	})

	t.Run("expired", func(t *testing.T) {
		past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := NewService("secret", time.Minute, WithClock(past)).Issue(operatorID, "staff")
		require.NoError(t, err)

		_, err = NewService("secret", time.Minute).Parse(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("within leeway", func(t *testing.T) {
		issued := time.Now().Add(-time.Minute - 10*time.Second)
		token, err := NewService("secret", time.Minute, WithClock(func() time.Time { return issued })).Issue(operatorID, "staff")
		require.NoError(t, err)

		_, err = NewService("secret", time.Minute).Parse(token)
		assert.NoError(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).Issue(operatorID, "staff")
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign audience", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
			Role: "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    issuer,
				Audience:  gojwt.ClaimStrings{"players"},
				Subject:   operatorID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("nil operator", func(t *testing.T) {
		svc := NewService("secret", time.Hour)
		token, err := svc.Issue(uuid.Nil, "staff")
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Subject: operatorID.String()},
		}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).Parse("a.b.c")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
