package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PuzzleSize is the number of distinct letters in a Spelling Bee puzzle.
const PuzzleSize = 7

// Puzzle is an immutable set of seven distinct lowercase letters plus a
// designated center letter that every answer must contain. Construct it with
// NewPuzzle; the zero value is not usable.
type Puzzle struct {
	letters map[rune]bool
	sorted  string
	center  rune
}

// NewPuzzle builds a Puzzle from the given letters and center character.
// Input is trimmed and lowercased before validation. It returns a
// *ValidationError when the distinct letter count is not exactly PuzzleSize,
// when a character is outside a-z, or when center is not one of the letters.
func NewPuzzle(letters, center string) (*Puzzle, error) {
	set := make(map[rune]bool, PuzzleSize)
	for _, r := range strings.ToLower(strings.TrimSpace(letters)) {
		if r < 'a' || r > 'z' {
			return nil, NewValidationError("letters", fmt.Sprintf("character %q is not a lowercase latin letter", r))
		}
		set[r] = true
	}
	if len(set) != PuzzleSize {
		return nil, NewValidationError("letters", fmt.Sprintf("expected %d distinct letters, got %d", PuzzleSize, len(set)))
	}

	c := []rune(strings.ToLower(strings.TrimSpace(center)))
	if len(c) != 1 {
		return nil, NewValidationError("center", "center must be a single letter")
	}
	if !set[c[0]] {
		return nil, NewValidationError("center", fmt.Sprintf("center letter %q must be one of the puzzle letters", c[0]))
	}

	ordered := make([]rune, 0, PuzzleSize)
	for r := range set {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	return &Puzzle{
		letters: set,
		sorted:  string(ordered),
		center:  c[0],
	}, nil
}

// Letters returns the seven puzzle letters in alphabetical order.
func (p *Puzzle) Letters() string { return p.sorted }

// Center returns the mandatory center letter.
func (p *Puzzle) Center() rune { return p.center }

// Contains reports whether r is one of the puzzle letters.
func (p *Puzzle) Contains(r rune) bool { return p.letters[r] }

// Covers reports whether every character of word is a puzzle letter.
// Letters may repeat; an empty word is trivially covered.
func (p *Puzzle) Covers(word string) bool {
	for _, r := range word {
		if !p.letters[r] {
			return false
		}
	}
	return true
}

// IsPangram reports whether word uses every puzzle letter at least once.
func (p *Puzzle) IsPangram(word string) bool {
	seen := make(map[rune]bool, PuzzleSize)
	for _, r := range word {
		if p.letters[r] {
			seen[r] = true
		}
	}
	return len(seen) == PuzzleSize
}
