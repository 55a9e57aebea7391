// Package wordsource provides restartable word-list sources for the solver.
// A Source produces a fresh Iterator on every Open, so the same puzzle can be
// solved repeatedly against files, in-memory lists, or the database catalog
// without the pipeline knowing where the words come from.
package wordsource

import "context"

// Iterator walks a finite sequence of normalized dictionary words.
// After Next returns false the caller must consult Err to distinguish
// end-of-data from a read failure.
type Iterator interface {
	// Next returns the next word and true, or "" and false when exhausted.
	Next() (string, bool)

	// Err returns the first error encountered while reading, if any.
	Err() error

	// Close releases underlying resources. Safe to call after exhaustion.
	Close() error
}

// Source is a restartable producer of dictionary words.
type Source interface {
	Open(ctx context.Context) (Iterator, error)
}
