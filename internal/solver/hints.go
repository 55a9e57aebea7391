package solver

import (
	"sort"
	"strings"
)

// PrefixCount is one hint bucket: how many answers start with Prefix.
type PrefixCount struct {
	Prefix string
	Count  int
}

// HintStats summarizes the answer set without revealing any word, for
// players who want a nudge rather than spoilers.
type HintStats struct {
	// ByFirstLetter is sorted alphabetically, upper-cased.
	ByFirstLetter []PrefixCount

	// TwoLetterStarts holds the most common two-letter openings,
	// most frequent first with alphabetical tie-break.
	TwoLetterStarts []PrefixCount
}

// Hints computes hint statistics over the accepted words. maxStarts bounds
// the two-letter list; 0 or negative keeps every prefix.
func (s *Solution) Hints(maxStarts int) HintStats {
	first := make(map[string]int)
	starts := make(map[string]int)
	for _, r := range s.Results {
		if r.Word == "" {
			continue
		}
		first[strings.ToUpper(r.Word[:1])]++
		// Single-letter answers (possible with a relaxed min_len) count
		// under their whole word.
		start := r.Word
		if len(start) > 2 {
			start = start[:2]
		}
		starts[strings.ToUpper(start)]++
	}

	byFirst := make([]PrefixCount, 0, len(first))
	for p, n := range first {
		byFirst = append(byFirst, PrefixCount{Prefix: p, Count: n})
	}
	sort.Slice(byFirst, func(i, j int) bool {
		return byFirst[i].Prefix < byFirst[j].Prefix
	})

	byStart := make([]PrefixCount, 0, len(starts))
	for p, n := range starts {
		byStart = append(byStart, PrefixCount{Prefix: p, Count: n})
	}
	sort.Slice(byStart, func(i, j int) bool {
		if byStart[i].Count != byStart[j].Count {
			return byStart[i].Count > byStart[j].Count
		}
		return byStart[i].Prefix < byStart[j].Prefix
	})
	if maxStarts > 0 && len(byStart) > maxStarts {
		byStart = byStart[:maxStarts]
	}

	return HintStats{ByFirstLetter: byFirst, TwoLetterStarts: byStart}
}
