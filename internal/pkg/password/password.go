// Package password hashes operator passwords with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinLength = 10
	// bcrypt only reads the first 72 bytes
	MaxLength = 72
	cost      = 12
)

var (
	ErrTooShort = errors.New("password too short")
	ErrTooLong  = errors.New("password too long")
	ErrMismatch = errors.New("password does not match")
)

// Hash checks the length bounds and returns a bcrypt hash.
func Hash(plain string) (string, error) {
	switch {
	case len(plain) < MinLength:
		return "", ErrTooShort
	case len(plain) > MaxLength:
		return "", ErrTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify returns ErrMismatch for a wrong password and the bcrypt error for a
// malformed hash.
func Verify(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
