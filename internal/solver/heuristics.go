package solver

import "strings"

// Heuristics holds the hand-tuned constants behind the plural and obscurity
// checks. The values are best-effort approximations of NYT answer-list
// behavior, not grammatical analysis; DefaultHeuristics returns the tuning
// the solver was calibrated with. Treat them as opaque knobs.
type Heuristics struct {
	// PluralExceptions are word endings in "s" that are not simple plurals
	// (the known false-positive guard list).
	PluralExceptions []string

	// RareLetters are letters whose consecutive repetition marks a word
	// as obscure.
	RareLetters string

	// RepeatRatio marks a word obscure when a single character occupies at
	// least this share of it. Applies from RepeatMinLen characters up.
	RepeatRatio  float64
	RepeatMinLen int

	// ObscureLen rejects any word of this length or longer outright.
	ObscureLen int

	// LongWordDelta and VeryLongWordDelta tighten the frequency threshold
	// for words of length >= 8 and >= 9 under aggressive filtering.
	LongWordDelta     float64
	VeryLongWordDelta float64
}

// DefaultHeuristics returns the calibrated heuristic constants.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		PluralExceptions:  []string{"ous", "ness", "less", "ious", "us"},
		RareLetters:       "qxz",
		RepeatRatio:       0.6,
		RepeatMinLen:      6,
		ObscureLen:        15,
		LongWordDelta:     0.3,
		VeryLongWordDelta: 0.5,
	}
}

// LikelyPlural reports whether word looks like a simple plural of an
// already-valid base word. NYT puzzles rarely accept those. Words of four
// characters or fewer, "ss" endings, and the exception suffixes are never
// flagged.
func (h Heuristics) LikelyPlural(word string) bool {
	if !strings.HasSuffix(word, "s") || len(word) <= 4 {
		return false
	}
	if strings.HasSuffix(word, "ss") {
		return false
	}
	for _, suffix := range h.PluralExceptions {
		if strings.HasSuffix(word, suffix) {
			return false
		}
	}
	return true
}

// Obscure reports whether word is likely too obscure to be an answer:
// extremely long words, runs of two or more rare letters, or (from
// RepeatMinLen up) words dominated by a single repeated character.
func (h Heuristics) Obscure(word string) bool {
	if len(word) >= h.ObscureLen {
		return true
	}
	if h.hasRareRun(word) {
		return true
	}
	if len(word) >= h.RepeatMinLen && h.letterSpam(word) {
		return true
	}
	return false
}

// hasRareRun detects two or more consecutive rare letters ("qq", "xz", ...).
func (h Heuristics) hasRareRun(word string) bool {
	run := 0
	for _, r := range word {
		if strings.ContainsRune(h.RareLetters, r) {
			run++
			if run >= 2 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// letterSpam reports whether a single character occupies at least
// RepeatRatio of the word.
func (h Heuristics) letterSpam(word string) bool {
	counts := make(map[rune]int, len(word))
	for _, r := range word {
		counts[r]++
	}
	limit := float64(len(word)) * h.RepeatRatio
	for _, n := range counts {
		if float64(n) >= limit {
			return true
		}
	}
	return false
}
