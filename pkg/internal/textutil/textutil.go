// Package textutil holds the rune-aware string helpers used when matching
// names against rules.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lower lower-cases s with Russian casing rules. A Caser is stateful, so one
// is built per call.
func Lower(s string) string {
	return cases.Lower(language.Russian).String(s)
}

// Normalize returns the NFC form of s so that decomposed letters (и + U+0306)
// compare equal to their precomposed rule spelling (й).
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// RuneLen returns the number of code points in s
func RuneLen(s string) int {
	return len([]rune(s))
}

// LastRunes returns the trailing n code points of s, or "" when s is shorter
// than n.
func LastRunes(s string, n int) string {
	r := []rune(s)
	if n < 0 || n > len(r) {
		return ""
	}
	return string(r[len(r)-n:])
}

// HasRuneSuffix reports whether the trailing len(suffix) code points of s equal
// suffix. A suffix longer than s never matches.
func HasRuneSuffix(s, suffix string) bool {
	n := RuneLen(suffix)
	if n > RuneLen(s) {
		return false
	}
	return strings.HasSuffix(s, suffix)
}
