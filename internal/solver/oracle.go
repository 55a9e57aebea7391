package solver

import "context"

// Oracle reports how common a word is in English usage as a Zipf score
// (logarithmic; higher = more common). Implementations return 0.0 for words
// the underlying dataset does not know. A nil Oracle means "no opinion":
// the pipeline then skips all frequency-based rejection.
type Oracle interface {
	Zipf(ctx context.Context, word string) (float64, error)
}
