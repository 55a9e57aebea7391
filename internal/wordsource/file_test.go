package wordsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/heartmarshall/spellingbee/internal/domain"
)

func writeWordlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}
	return path
}

func drain(t *testing.T, it Iterator) []string {
	t.Helper()
	var words []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, w)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}
	return words
}

func TestFile_SkipsMalformedLines(t *testing.T) {
	path := writeWordlist(t, "RENTAL\n\nlearnt s\ndon't\n  antler  \nabc123\nlearnt\n")

	src := NewFile(path)
	it, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer it.Close()

	got := drain(t, it)
	want := []string{"rental", "antler", "learnt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFile_Restartable(t *testing.T) {
	path := writeWordlist(t, "one\ntwo\n")
	src := NewFile(path)

	for run := 0; run < 2; run++ {
		it, err := src.Open(context.Background())
		if err != nil {
			t.Fatalf("Open #%d returned error: %v", run+1, err)
		}
		got := drain(t, it)
		it.Close()

		if len(got) != 2 || got[0] != "one" || got[1] != "two" {
			t.Errorf("run %d: got %v, want [one two]", run+1, got)
		}
	}
}

func TestFile_Missing(t *testing.T) {
	src := NewFile(filepath.Join(t.TempDir(), "no-such-file.txt"))

	_, err := src.Open(context.Background())
	if err == nil {
		t.Fatal("Open succeeded on a missing file")
	}
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Errorf("error %v is not ErrSourceUnavailable", err)
	}
}

func TestMemory_NormalizesAndRestarts(t *testing.T) {
	src := NewMemory("Rental", "LEARNT S", "antler")

	for run := 0; run < 2; run++ {
		it, err := src.Open(context.Background())
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		got := drain(t, it)
		it.Close()

		if len(got) != 2 || got[0] != "rental" || got[1] != "antler" {
			t.Errorf("run %d: got %v, want [rental antler]", run+1, got)
		}
	}
}
