package paths

import (
	"strings"
	"unicode"
)

// Sanitize makes path safe to place on a single line of a text buffer.
// Carriage returns and line feeds become a single space each; every other
// control character is removed.
func Sanitize(path string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r' || r == '\n':
			return ' '
		case r < ' ':
			return -1
		default:
			return r
		}
	}, path)
}

// SanitizeAll sanitizes every path and reports whether any of them changed.
func SanitizeAll(paths []string) ([]string, bool) {
	out := make([]string, len(paths))
	changed := false
	for i, p := range paths {
		out[i] = Sanitize(p)
		if out[i] != p {
			changed = true
		}
	}
	return out, changed
}

// HasTrailingWhitespace reports whether path ends in a whitespace character.
func HasTrailingWhitespace(path string) bool {
	return strings.TrimRightFunc(path, unicode.IsSpace) != path
}
