package utils

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeInput removes terminal escape sequences (arrow keys, bracketed
// paste markers, colour codes) and any remaining control characters from a
// raw line of terminal input. Surrounding whitespace is preserved so that
// secrets keep their exact value; callers trim where appropriate.
func SanitizeInput(raw string) string {
	stripped := ansi.Strip(raw)

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}
