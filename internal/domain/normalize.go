package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName prepares a person or place name for storage:
//   - composes Unicode to NFC, so "é" typed as e + U+0301 becomes one rune
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case and diacritics are preserved.
func NormalizeName(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsLettersAndSpaces reports whether s is non-empty and consists only of
// Unicode letters and whitespace. Callers should pass NFC-normalized text.
func IsLettersAndSpaces(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
