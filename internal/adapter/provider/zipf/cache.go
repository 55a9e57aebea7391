package zipf

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Oracle is the lookup the cache wraps; *Provider satisfies it.
type Oracle interface {
	Zipf(ctx context.Context, word string) (float64, error)
}

// DefaultCacheSize bounds memoization against adversarial word lists.
const DefaultCacheSize = 50000

// Cached memoizes Zipf lookups in a fixed-capacity LRU cache so repeated
// solves against the same dictionary pay for each word at most once.
// Failed lookups are not cached.
type Cached struct {
	inner Oracle
	cache *lru.Cache[string, float64]
}

// NewCached wraps inner with a cache holding up to size entries.
// size <= 0 falls back to DefaultCacheSize.
func NewCached(inner Oracle, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, float64](size)
	if err != nil {
		return nil, fmt.Errorf("zipf: create cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// Zipf returns the cached score when present, otherwise consults the inner
// oracle and caches the answer.
func (c *Cached) Zipf(ctx context.Context, word string) (float64, error) {
	if score, ok := c.cache.Get(word); ok {
		return score, nil
	}

	score, err := c.inner.Zipf(ctx, word)
	if err != nil {
		return 0, err
	}

	c.cache.Add(word, score)
	return score, nil
}

// Len reports the number of memoized words.
func (c *Cached) Len() int { return c.cache.Len() }
