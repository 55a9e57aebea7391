package solver

import (
	"context"
	"fmt"
)

// RejectReason identifies the filter stage that discarded a word.
type RejectReason int

const (
	Accepted RejectReason = iota
	RejectedTooLong
	RejectedPlural
	RejectedObscure
	RejectedRare
	RejectedAggressive
)

func (r RejectReason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedTooLong:
		return "too_long"
	case RejectedPlural:
		return "likely_plural"
	case RejectedObscure:
		return "obscure"
	case RejectedRare:
		return "below_frequency_threshold"
	case RejectedAggressive:
		return "below_aggressive_threshold"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// QualityFilter decides whether a structurally legal word is plausible as an
// NYT answer. Checks run cheapest-first and short-circuit: the length cap and
// the plural/obscurity heuristics come before the oracle lookup so that
// rejected words never cost a frequency query.
type QualityFilter struct {
	opts   Options
	heur   Heuristics
	oracle Oracle
}

// NewQualityFilter builds a filter over the given options and heuristics.
// oracle may be nil; frequency-based checks are then skipped entirely.
func NewQualityFilter(opts Options, heur Heuristics, oracle Oracle) *QualityFilter {
	return &QualityFilter{opts: opts, heur: heur, oracle: oracle}
}

// Admit evaluates a word against every enabled check. It returns the reason
// the word was rejected (or Accepted), together with the Zipf score used for
// the judgment (0 when no oracle was consulted). An oracle lookup failure is
// treated as "no opinion": the word is admitted with Zipf 0 and the error is
// returned so the caller can count it.
func (f *QualityFilter) Admit(ctx context.Context, word string) (RejectReason, float64, error) {
	if f.opts.MaxLen > 0 && len(word) > f.opts.MaxLen {
		return RejectedTooLong, 0, nil
	}
	if f.opts.FilterPlurals && f.heur.LikelyPlural(word) {
		return RejectedPlural, 0, nil
	}
	if f.opts.FilterObscure && f.heur.Obscure(word) {
		return RejectedObscure, 0, nil
	}

	if f.opts.MinZipf <= 0 || f.oracle == nil {
		return Accepted, 0, nil
	}

	zipf, err := f.oracle.Zipf(ctx, word)
	if err != nil {
		return Accepted, 0, err
	}
	if zipf < f.opts.MinZipf {
		return RejectedRare, zipf, nil
	}

	// Longer words are disproportionately likely to be obscure even when
	// nominally above the base threshold.
	if f.opts.Aggressive {
		if len(word) >= 8 && zipf < f.opts.MinZipf+f.heur.LongWordDelta {
			return RejectedAggressive, zipf, nil
		}
		if len(word) >= 9 && zipf < f.opts.MinZipf+f.heur.VeryLongWordDelta {
			return RejectedAggressive, zipf, nil
		}
	}

	return Accepted, zipf, nil
}
