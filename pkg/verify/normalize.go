package verify

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for byte-exact comparison: CRLF and lone CR
// become LF, trailing whitespace is stripped from every line, surrounding
// blank space is dropped, and the result ends with exactly one newline.
// Idempotent and total over all inputs.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
