package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/spellingbee/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

func TestNewWord(t *testing.T) {
	w, err := NewWord("rental", "en")
	if err != nil {
		t.Fatalf("NewWord returned error: %v", err)
	}
	if w.Length != 6 || w.Text != "rental" || w.Language != "en" {
		t.Errorf("NewWord = %+v, want rental/en/6", w)
	}

	if _, err := NewWord("Rental", "en"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("NewWord with unnormalized text: err = %v, want ErrValidation", err)
	}
	if _, err := NewWord("learnt s", "en"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("NewWord with embedded space: err = %v, want ErrValidation", err)
	}
}

func TestRepo_BulkInsertWords(t *testing.T) {
	mock := newMock(t)
	repo := New(mock, newTestLogger())

	words := make([]Word, 0, 3)
	for _, text := range []string{"rental", "learnt", "antler"} {
		w, err := NewWord(text, "en")
		if err != nil {
			t.Fatalf("NewWord(%q): %v", text, err)
		}
		words = append(words, w)
	}

	mock.ExpectExec("INSERT INTO catalog_words").
		WillReturnResult(pgxmock.NewResult("INSERT", 3))

	inserted, err := repo.BulkInsertWords(context.Background(), words, 500)
	if err != nil {
		t.Fatalf("BulkInsertWords returned error: %v", err)
	}
	if inserted != 3 {
		t.Errorf("inserted = %d, want 3", inserted)
	}
}

func TestRepo_BulkInsertWords_Batches(t *testing.T) {
	mock := newMock(t)
	repo := New(mock, newTestLogger())

	var words []Word
	for _, text := range []string{"one", "two", "six", "ten", "tan"} {
		w, err := NewWord(text, "en")
		if err != nil {
			t.Fatalf("NewWord(%q): %v", text, err)
		}
		words = append(words, w)
	}

	// Batch size 2 over 5 words: three INSERT statements.
	mock.ExpectExec("INSERT INTO catalog_words").WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectExec("INSERT INTO catalog_words").WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectExec("INSERT INTO catalog_words").WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.BulkInsertWords(context.Background(), words, 2)
	if err != nil {
		t.Fatalf("BulkInsertWords returned error: %v", err)
	}
	if inserted != 5 {
		t.Errorf("inserted = %d, want 5", inserted)
	}
}

func TestRepo_BulkInsertWords_Empty(t *testing.T) {
	mock := newMock(t)
	repo := New(mock, newTestLogger())

	inserted, err := repo.BulkInsertWords(context.Background(), nil, 500)
	if err != nil {
		t.Fatalf("BulkInsertWords returned error: %v", err)
	}
	if inserted != 0 {
		t.Errorf("inserted = %d, want 0", inserted)
	}
}

func TestRepo_CountWords(t *testing.T) {
	mock := newMock(t)
	repo := New(mock, newTestLogger())

	mock.ExpectQuery("SELECT count").
		WithArgs("en").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.CountWords(context.Background(), "en")
	if err != nil {
		t.Fatalf("CountWords returned error: %v", err)
	}
	if n != 42 {
		t.Errorf("CountWords = %d, want 42", n)
	}
}

func TestSource_Open_StreamsRows(t *testing.T) {
	mock := newMock(t)

	puzzle, err := domain.NewPuzzle("AELNRST", "N")
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}

	rows := pgxmock.NewRows([]string{"text_normalized"}).
		AddRow("antler").
		AddRow("rental")
	mock.ExpectQuery("SELECT text_normalized FROM catalog_words").
		WithArgs("en", "^[aelnrst]+$", "n", 4, 10).
		WillReturnRows(rows)

	src := NewSource(mock, "en", puzzle, 4, 10)
	it, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer it.Close()

	var got []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, w)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}

	if len(got) != 2 || got[0] != "antler" || got[1] != "rental" {
		t.Errorf("got %v, want [antler rental]", got)
	}
}

func TestSource_Open_QueryError(t *testing.T) {
	mock := newMock(t)

	puzzle, err := domain.NewPuzzle("AELNRST", "N")
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}

	mock.ExpectQuery("SELECT text_normalized FROM catalog_words").
		WillReturnError(errors.New("connection reset"))

	src := NewSource(mock, "en", puzzle, 4, 0)
	if _, err := src.Open(context.Background()); !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Errorf("Open error = %v, want ErrSourceUnavailable", err)
	}
}
