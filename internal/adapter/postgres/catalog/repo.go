// Package catalog implements the word catalog repository backed by
// PostgreSQL. The catalog holds normalized dictionary words so puzzles can be
// solved against a curated database instead of a flat file. Rows are
// append-only; re-imports skip words already present.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/spellingbee/internal/adapter/postgres"
	"github.com/heartmarshall/spellingbee/internal/domain"
)

const tableWords = "catalog_words"

// qb builds queries with PostgreSQL $N placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Word is one catalog row.
type Word struct {
	ID       uuid.UUID
	Text     string
	Language string
	Length   int
}

// NewWord builds a catalog row for a normalized word token.
// Returns a validation error when the word is not a normalized token.
func NewWord(text, language string) (Word, error) {
	if !domain.IsWordToken(text) {
		return Word{}, domain.NewValidationError("text", fmt.Sprintf("%q is not a normalized word token", text))
	}
	return Word{
		ID:       uuid.New(),
		Text:     text,
		Language: language,
		Length:   len(text),
	}, nil
}

// Repo provides word catalog persistence.
type Repo struct {
	q   postgres.Querier
	log *slog.Logger
}

// New creates a catalog repository over the given querier.
func New(q postgres.Querier, logger *slog.Logger) *Repo {
	return &Repo{q: q, log: logger.With("adapter", "catalog")}
}

// BulkInsertWords inserts words in batches of batchSize with
// ON CONFLICT DO NOTHING, so duplicate imports are idempotent.
// It returns the number of rows actually inserted.
func (r *Repo) BulkInsertWords(ctx context.Context, words []Word, batchSize int) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(words); i += batchSize {
		end := min(i+batchSize, len(words))

		insert := qb.Insert(tableWords).
			Columns("id", "text_normalized", "language", "length")
		for _, w := range words[i:end] {
			insert = insert.Values(w.ID, w.Text, w.Language, w.Length)
		}
		insert = insert.Suffix("ON CONFLICT (text_normalized, language) DO NOTHING")

		sql, args, err := insert.ToSql()
		if err != nil {
			return total, fmt.Errorf("build insert: %w", err)
		}

		tag, err := r.q.Exec(ctx, sql, args...)
		if err != nil {
			return total, postgres.MapError(err, "catalog_words", "batch")
		}
		total += int(tag.RowsAffected())
	}

	r.log.Debug("bulk insert completed", slog.Int("requested", len(words)), slog.Int("inserted", total))
	return total, nil
}

// CountWords returns the number of catalog rows for a language.
func (r *Repo) CountWords(ctx context.Context, language string) (int, error) {
	sql, args, err := qb.Select("count(*)").
		From(tableWords).
		Where(squirrel.Eq{"language": language}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "catalog_words", language)
	}
	return n, nil
}
