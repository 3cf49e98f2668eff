//go:build unit

package password_test

import (
	"strings"
	"testing"

	"pickup-rsvp/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("pitch-side-42")
	require.NoError(t, err)
	assert.NotEqual(t, "pitch-side-42", hash)

	assert.NoError(t, password.Verify(hash, "pitch-side-42"))
	assert.ErrorIs(t, password.Verify(hash, "pitch-side-43"), password.ErrMismatch)
	assert.Error(t, password.Verify("not-a-hash", "pitch-side-42"))
}

func TestHashLengthBounds(t *testing.T) {
	_, err := password.Hash("short")
	assert.ErrorIs(t, err, password.ErrTooShort)

	_, err = password.Hash(strings.Repeat("x", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrTooLong)
}
