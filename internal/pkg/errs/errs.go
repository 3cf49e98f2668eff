// Package errs is the project's one entry point to cockroachdb/errors, so
// every wrapped error carries a stack and marks survive wrapping.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error { return cr.New(msg) }

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so that Is(err, mark) holds while the original message and
// stack are kept for logging. A nil err yields mark itself.
func Mark(err, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

func Is(err, reference error) bool { return cr.Is(err, reference) }

func As(err error, target any) bool { return cr.As(err, target) }
