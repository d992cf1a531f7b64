// Package quoting provides shared SQL literal quoting utilities.
package quoting

import "strings"

// EscapeString escapes a string literal for SQL by doubling single quotes
// and escaping backslashes (for MySQL compatibility).
//
// SECURITY: compiled queries inline literals so they can be displayed and
// previewed as-is. Values arrive from the interactive session, not from an
// untrusted network surface; services embedding this library should still
// prefer parameterized execution for anything user-facing.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}

// SingleQuote renders a string as a single-quoted SQL literal.
func SingleQuote(s string) string {
	return "'" + EscapeString(s) + "'"
}
