// Package solver implements the Spelling Bee answer pipeline: structural
// validation, quality filtering, and scoring over a streamed word list.
// The pipeline is stateless and idempotent: identical inputs produce
// identical, identically ordered results.
package solver

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/spellingbee/internal/domain"
	"github.com/heartmarshall/spellingbee/internal/wordsource"
)

// Options controls the pipeline. Zero values disable the optional checks;
// DefaultOptions returns the standard puzzle rules.
type Options struct {
	// MinLen is the minimum answer length (puzzle rule: 4).
	MinLen int

	// MaxLen drops words longer than this before any oracle lookup.
	// 0 disables the cap.
	MaxLen int

	// PangramBonus is added to the score of words using all seven letters.
	PangramBonus int

	// MinZipf rejects words scoring below this frequency threshold.
	// 0 disables frequency filtering.
	MinZipf float64

	// FilterPlurals enables the simple-plural heuristic.
	FilterPlurals bool

	// FilterObscure enables the obscurity heuristics.
	FilterObscure bool

	// Aggressive tightens the frequency threshold for long words.
	// Only meaningful when frequency filtering is active.
	Aggressive bool
}

// DefaultOptions returns the standard NYT puzzle rules with both heuristic
// filters enabled and frequency filtering off (no oracle configured).
func DefaultOptions() Options {
	return Options{
		MinLen:        4,
		MaxLen:        10,
		PangramBonus:  7,
		FilterPlurals: true,
		FilterObscure: true,
	}
}

// Stats counts the outcome of one Solve pass, per rejection stage.
type Stats struct {
	Scanned            int
	Accepted           int
	RejectedStructural int
	RejectedTooLong    int
	RejectedPlural     int
	RejectedObscure    int
	RejectedRare       int
	RejectedAggressive int
	OracleErrors       int
	Duration           time.Duration
}

// Solution is the outcome of one solve: accepted words sorted by descending
// score with alphabetical tie-break, plus per-stage counters.
type Solution struct {
	Results []domain.WordResult
	Stats   Stats
}

// TotalPoints sums the scores of all accepted words.
func (s *Solution) TotalPoints() int {
	total := 0
	for _, r := range s.Results {
		total += r.Score
	}
	return total
}

// Pangrams returns the accepted pangrams in result order.
func (s *Solution) Pangrams() []domain.WordResult {
	var out []domain.WordResult
	for _, r := range s.Results {
		if r.IsPangram {
			out = append(out, r)
		}
	}
	return out
}

// Pipeline streams dictionary words through the validator, the quality
// filter, and the scorer. It owns no shared state; the oracle's cache is the
// only memory carried across runs.
type Pipeline struct {
	log    *slog.Logger
	puzzle *domain.Puzzle
	opts   Options
	heur   Heuristics
	filter *QualityFilter
	oracle Oracle
}

// New creates a Pipeline for one puzzle. oracle may be nil: the pipeline then
// runs in degraded mode and rejects nothing on frequency grounds.
func New(log *slog.Logger, puzzle *domain.Puzzle, opts Options, heur Heuristics, oracle Oracle) *Pipeline {
	return &Pipeline{
		log:    log,
		puzzle: puzzle,
		opts:   opts,
		heur:   heur,
		filter: NewQualityFilter(opts, heur, oracle),
		oracle: oracle,
	}
}

// Solve streams entries from src and returns the sorted answer set.
// Configuration and source errors abort the whole call with no partial
// result; per-word rejections are normal negative outcomes, never errors.
func (p *Pipeline) Solve(ctx context.Context, src wordsource.Source) (*Solution, error) {
	start := time.Now()

	if p.opts.MinZipf > 0 && p.oracle == nil {
		p.log.Warn("frequency oracle not available; frequency filtering disabled")
	}

	it, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open word source: %w", err)
	}
	defer it.Close()

	var stats Stats
	var results []domain.WordResult

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		word, ok := it.Next()
		if !ok {
			break
		}
		stats.Scanned++

		if !IsValid(word, p.puzzle, p.opts.MinLen) {
			stats.RejectedStructural++
			continue
		}

		reason, zipf, lookupErr := p.filter.Admit(ctx, word)
		if lookupErr != nil {
			stats.OracleErrors++
			p.log.Debug("frequency lookup failed; keeping word",
				slog.String("word", word),
				slog.String("error", lookupErr.Error()),
			)
		}
		switch reason {
		case Accepted:
		case RejectedTooLong:
			stats.RejectedTooLong++
			continue
		case RejectedPlural:
			stats.RejectedPlural++
			continue
		case RejectedObscure:
			stats.RejectedObscure++
			continue
		case RejectedRare:
			stats.RejectedRare++
			continue
		case RejectedAggressive:
			stats.RejectedAggressive++
			continue
		}

		score, pangram := Score(word, p.puzzle, p.opts.PangramBonus)
		results = append(results, domain.WordResult{
			Word:      word,
			Length:    len(word),
			Score:     score,
			IsPangram: pangram,
			Zipf:      zipf,
		})
	}

	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("read word source: %w", err)
	}

	slices.SortFunc(results, func(a, b domain.WordResult) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(a.Word, b.Word)
	})

	stats.Accepted = len(results)
	stats.Duration = time.Since(start)

	p.log.Info("solve completed",
		slog.Int("scanned", stats.Scanned),
		slog.Int("accepted", stats.Accepted),
		slog.Int("oracle_errors", stats.OracleErrors),
		slog.Duration("duration", stats.Duration),
	)

	return &Solution{Results: results, Stats: stats}, nil
}
