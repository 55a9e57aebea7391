package domain

// WordResult is the output record for one accepted answer. It is created
// once by the solver pipeline and never mutated afterwards.
type WordResult struct {
	// Word is the accepted dictionary word, normalized to lowercase.
	Word string

	// Length is len(Word); answers are plain ASCII after normalization.
	Length int

	// Score is the puzzle point value including any pangram bonus.
	Score int

	// IsPangram reports whether the word uses all seven puzzle letters.
	IsPangram bool

	// Zipf is the frequency score the word was judged with.
	// 0 when no frequency oracle was consulted.
	Zipf float64
}
