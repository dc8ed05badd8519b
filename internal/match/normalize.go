package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize maps raw text to the form the matcher compares.
// The normalization pipeline:
// 1. Lower-case using locale-independent Unicode rules.
// 2. Drop every rune that is neither an ASCII word character ([A-Za-z0-9_]) nor whitespace.
// 3. Trim leading and trailing whitespace.
//
// Internal whitespace runs are left as they are.
func Normalize(text string) string {
	// A Caser keeps state between calls, so each call gets its own.
	lowered := cases.Lower(language.Und).String(text)

	var b strings.Builder

	b.Grow(len(lowered))

	for _, r := range lowered {
		if isWordRune(r) || isSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.TrimFunc(b.String(), isSpace)
}

// isWordRune reports whether r is an ASCII letter, digit or underscore.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return r == '_'
	}
}

// isSpace reports whether r is whitespace or a line terminator in the
// ECMAScript sense. This differs from unicode.IsSpace: U+FEFF counts, U+0085 does not.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	default:
		return r >= '\u2000' && r <= '\u200a'
	}
}
