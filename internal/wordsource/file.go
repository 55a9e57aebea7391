package wordsource

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/spellingbee/internal/domain"
)

// File reads words from a UTF-8 text file, one entry per line. Lines are
// trimmed and lowercased; lines that are not plain alphabetic tokens are
// skipped silently. Each Open re-reads the file from the beginning.
type File struct {
	path string
}

// NewFile creates a file-backed word source. The file is not touched until
// Open is called.
func NewFile(path string) *File {
	return &File{path: path}
}

// Open opens the word list for reading. A missing or unreadable file is
// reported as domain.ErrSourceUnavailable.
func (f *File) Open(_ context.Context) (Iterator, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open wordlist %s: %v", domain.ErrSourceUnavailable, f.path, err)
	}
	return &fileIterator{
		file:    fh,
		scanner: bufio.NewScanner(fh),
	}, nil
}

type fileIterator struct {
	file    *os.File
	scanner *bufio.Scanner
}

func (it *fileIterator) Next() (string, bool) {
	for it.scanner.Scan() {
		if w := domain.NormalizeWord(it.scanner.Text()); w != "" {
			return w, true
		}
	}
	return "", false
}

func (it *fileIterator) Err() error {
	if err := it.scanner.Err(); err != nil {
		return fmt.Errorf("read wordlist %s: %w", it.file.Name(), err)
	}
	return nil
}

func (it *fileIterator) Close() error {
	return it.file.Close()
}
