// Package jwt issues and checks the bearer tokens operators use on the
// admin endpoints. Tokens are HS256, scoped to one issuer and audience, and
// carry the operator id as the subject.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	issuer   = "pickup-rsvp"
	audience = "operators"
	leeway   = 30 * time.Second
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// OperatorID parses the subject.
func (c *Claims) OperatorID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

type Option func(*Service)

// WithClock replaces time.Now for both issuing and parsing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

type Service struct {
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewService(secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{key: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

func (s *Service) TTL() time.Duration { return s.ttl }

// Issue signs a token for one operator.
func (s *Service) Issue(operatorID uuid.UUID, role string) (string, error) {
	now := s.now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   operatorID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}).SignedString(s.key)
}

// Parse verifies signature and registered claims. Expiry is reported apart
// from every other failure.
func (s *Service) Parse(token string) (*Claims, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}
	if _, err := claims.OperatorID(); err != nil {
		return nil, err
	}
	return &claims, nil
}
