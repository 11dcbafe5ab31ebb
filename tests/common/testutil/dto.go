//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap renders a request DTO as the JSON object a client would send, then
// applies muts so tests can break single fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or removes it when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Item applies muts to the i-th entry of a checkout "items" array.
func Item(i int, muts ...func(map[string]any)) func(map[string]any) {
	return func(m map[string]any) {
		items, _ := m["items"].([]any)
		if i >= len(items) {
			return
		}
		item, _ := items[i].(map[string]any)
		for _, f := range muts {
			f(item)
		}
	}
}
