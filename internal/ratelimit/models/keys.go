package models

import "strings"

// SanitizeKeySegment escapes delimiter characters in rate limit key segments
// so a client identifier containing ':' cannot address another source's window.
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// Key identifies the window of one client against one source.
func Key(source, client string) string {
	return SanitizeKeySegment(source) + ":" + SanitizeKeySegment(client)
}
