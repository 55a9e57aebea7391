package wordsource

import (
	"context"

	"github.com/heartmarshall/spellingbee/internal/domain"
)

// Memory is a slice-backed word source used in tests and for embedded word
// lists. Entries pass through the same normalization gate as file lines.
type Memory struct {
	words []string
}

// NewMemory creates an in-memory word source over the given lines.
func NewMemory(words ...string) *Memory {
	return &Memory{words: words}
}

// Open returns a fresh iterator over the word list.
func (m *Memory) Open(_ context.Context) (Iterator, error) {
	return &memoryIterator{words: m.words}, nil
}

type memoryIterator struct {
	words []string
	pos   int
}

func (it *memoryIterator) Next() (string, bool) {
	for it.pos < len(it.words) {
		w := domain.NormalizeWord(it.words[it.pos])
		it.pos++
		if w != "" {
			return w, true
		}
	}
	return "", false
}

func (it *memoryIterator) Err() error { return nil }

func (it *memoryIterator) Close() error { return nil }
