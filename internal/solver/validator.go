package solver

import (
	"strings"

	"github.com/heartmarshall/spellingbee/internal/domain"
)

// IsValid reports whether word is a structurally legal puzzle answer:
// at least minLen characters, contains the center letter, and built only
// from the puzzle letters (reuse allowed). Pure; never fails. Frequency and
// quality heuristics are a separate concern (see QualityFilter).
func IsValid(word string, p *domain.Puzzle, minLen int) bool {
	if len(word) < minLen {
		return false
	}
	if !strings.ContainsRune(word, p.Center()) {
		return false
	}
	return p.Covers(word)
}
