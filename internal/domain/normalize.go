package domain

import (
	"regexp"
	"strings"
)

// wordPattern gates dictionary entries: a single lowercase ASCII token.
var wordPattern = regexp.MustCompile(`^[a-z]+$`)

// NormalizeWord prepares a raw word-list line for the solver:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//
// It returns "" when the normalized line is not a plain alphabetic token
// (digits, spaces, apostrophes, hyphens, empty lines). Malformed lines are
// not errors; callers skip them silently.
func NormalizeWord(line string) string {
	w := strings.ToLower(strings.TrimSpace(line))
	if !wordPattern.MatchString(w) {
		return ""
	}
	return w
}

// IsWordToken reports whether w is already a normalized dictionary token.
func IsWordToken(w string) bool {
	return wordPattern.MatchString(w)
}
