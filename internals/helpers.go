package internals

import "strings"

// DefaultSentinel is the line that ends an interactive session
const DefaultSentinel = "terminate"

// NormalizeLine strips the surrounding spaces and control characters of a raw
// input line, no-break spaces are kept
func NormalizeLine(raw string) string {
	return strings.TrimFunc(raw, func(char rune) bool {
		return char <= ' '
	})
}

// IsSentinel reports whether the (already normalized) line ends the session
func IsSentinel(line, sentinel string) bool {
	if sentinel == "" {
		return false
	}
	return line == sentinel
}
