package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/spellingbee/internal/adapter/postgres"
	"github.com/heartmarshall/spellingbee/internal/domain"
	"github.com/heartmarshall/spellingbee/internal/wordsource"
)

// Source streams catalog words for one puzzle. The structural letter filter
// is pushed into SQL (letter class, center membership, length bounds) so the
// database only ships plausible candidates; the pipeline still re-validates
// every word.
type Source struct {
	q        postgres.Querier
	language string
	puzzle   *domain.Puzzle
	minLen   int
	maxLen   int
}

// NewSource creates a catalog-backed word source for the given puzzle.
// maxLen 0 means no upper bound in the query.
func NewSource(q postgres.Querier, language string, puzzle *domain.Puzzle, minLen, maxLen int) *Source {
	return &Source{
		q:        q,
		language: language,
		puzzle:   puzzle,
		minLen:   minLen,
		maxLen:   maxLen,
	}
}

// Open runs the candidate query and returns an iterator over the rows.
// Query failures are reported as domain.ErrSourceUnavailable.
func (s *Source) Open(ctx context.Context) (wordsource.Iterator, error) {
	sel := qb.Select("text_normalized").
		From(tableWords).
		Where(squirrel.Eq{"language": s.language}).
		Where("text_normalized ~ ?", "^["+s.puzzle.Letters()+"]+$").
		Where("position(? in text_normalized) > 0", string(s.puzzle.Center())).
		Where(squirrel.GtOrEq{"length": s.minLen}).
		OrderBy("text_normalized")
	if s.maxLen > 0 {
		sel = sel.Where(squirrel.LtOrEq{"length": s.maxLen})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}

	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", domain.ErrSourceUnavailable, tableWords, err)
	}

	return &rowsIterator{rows: rows}, nil
}

type rowsIterator struct {
	rows pgx.Rows
	err  error
}

func (it *rowsIterator) Next() (string, bool) {
	if it.err != nil || !it.rows.Next() {
		return "", false
	}
	var word string
	if err := it.rows.Scan(&word); err != nil {
		it.err = fmt.Errorf("scan catalog word: %w", err)
		return "", false
	}
	return word, true
}

func (it *rowsIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.rows.Err()
}

func (it *rowsIterator) Close() error {
	it.rows.Close()
	return nil
}
