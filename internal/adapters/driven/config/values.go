// Package config holds helpers shared by the ConfigStore adapters.
package config

import (
	"maps"
	"slices"
)

// String returns v as a string, or "" if it is not one.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Bool returns v as a bool, or false if it is not one.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// StringSlice returns a copy of v as a string slice. Decoded TOML arrays
// arrive as []any; non-string elements are skipped.
func StringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return slices.Clone(vals)
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
