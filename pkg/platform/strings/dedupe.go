// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// SplitListLower flattens comma-separated values into one list, trimming and
// lowercasing each element and dropping empties and duplicates. Order is preserved.
//
// Example:
//
//	SplitListLower("DORIS, dlr", "dlr", " ")
//	// Returns: []string{"doris", "dlr"}
func SplitListLower(values ...string) []string {
	var parts []string
	for _, v := range values {
		parts = append(parts, strings.Split(v, ",")...)
	}
	return DedupeAndTrimLower(parts)
}

// DedupeAndTrimLower removes duplicates and empty strings from a slice,
// trimming and lowercasing each element. Order is preserved.
func DedupeAndTrimLower(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
