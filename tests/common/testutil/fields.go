//go:build unit || e2e

package testutil

// Field returns a mutation that sets (or removes, when value is nil) one key
// of a JSON-shaped request map.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Apply copies the map and applies the mutations, leaving the original
// fixture untouched for the next case.
func Apply(m map[string]any, mutations ...func(map[string]any)) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, mutate := range mutations {
		mutate(out)
	}
	return out
}
