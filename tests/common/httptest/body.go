//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to a JSON object.
type Mutation func(map[string]any)

// Drop removes a field so "missing" validation paths can be hit.
func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

// JSONWith round-trips v through its json tags and applies the mutations.
func JSONWith(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}
