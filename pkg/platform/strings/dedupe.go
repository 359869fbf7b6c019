// Package strings provides list and search helpers for user-entered text.
package strings

import (
	"strings"
)

// CleanList trims each element, drops empties and removes duplicates.
// Order of first occurrence is preserved.
//
//	CleanList([]string{"  Fotografie ", "Text", "Fotografie", ""})
//	// []string{"Fotografie", "Text"}
func CleanList(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// WithCustom appends a free-text "other" entry to a list of selected options
// and cleans the result.
func WithCustom(selected []string, custom string) []string {
	return CleanList(append(append([]string(nil), selected...), custom))
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
