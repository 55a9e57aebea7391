// Command catalog-import loads a flat word list into the PostgreSQL word
// catalog so puzzles can be solved with --source postgres. Lines that are not
// lowercase word tokens are skipped, and re-imports are idempotent.
//
// Flags:
//
//	--wordlist    path to the word list file (overrides config)
//	--language    catalog language tag (overrides config)
//	--batch-size  rows per INSERT statement
//	--dry-run     parse the word list without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/spellingbee/internal/adapter/postgres"
	"github.com/heartmarshall/spellingbee/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/spellingbee/internal/app"
	"github.com/heartmarshall/spellingbee/internal/config"
	"github.com/heartmarshall/spellingbee/internal/wordsource"
)

func main() {
	wordlistFlag := flag.String("wordlist", "", "path to the word list file")
	languageFlag := flag.String("language", "", "catalog language tag")
	batchSizeFlag := flag.Int("batch-size", 500, "rows per INSERT statement")
	dryRunFlag := flag.Bool("dry-run", false, "parse the word list without writing to DB")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *wordlistFlag != "" {
		cfg.Wordlist.Path = *wordlistFlag
	}
	if *languageFlag != "" {
		cfg.Wordlist.Language = *languageFlag
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Wordlist.Path == "" {
		logger.Error("no word list path configured")
		os.Exit(1)
	}
	if !*dryRunFlag && cfg.Database.DSN == "" {
		logger.Error("database.dsn is required for import")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	words, skipped, err := readWords(ctx, cfg.Wordlist.Path, cfg.Wordlist.Language)
	if err != nil {
		logger.Error("read word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("word list parsed",
		slog.String("path", cfg.Wordlist.Path),
		slog.Int("words", len(words)),
		slog.Int("skipped", skipped),
	)

	if *dryRunFlag {
		logger.Info("dry run, nothing written")
		return
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := catalog.New(pool, logger)

	start := time.Now()
	inserted, err := repo.BulkInsertWords(ctx, words, *batchSizeFlag)
	if err != nil {
		logger.Error("bulk insert", slog.String("error", err.Error()), slog.Int("inserted", inserted))
		os.Exit(1)
	}

	total, err := repo.CountWords(ctx, cfg.Wordlist.Language)
	if err != nil {
		logger.Error("count words", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.Int("inserted", inserted),
		slog.Int("duplicates", len(words)-inserted),
		slog.Int("catalog_total", total),
		slog.Duration("duration", time.Since(start)),
	)
}

// readWords streams the word list and builds catalog rows. The file iterator
// already drops lines that are not lowercase word tokens; skipped counts the
// rows rejected by catalog validation on top of that.
func readWords(ctx context.Context, path, language string) ([]catalog.Word, int, error) {
	src := wordsource.NewFile(path)
	it, err := src.Open(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer it.Close()

	var words []catalog.Word
	skipped := 0
	for {
		text, ok := it.Next()
		if !ok {
			break
		}
		w, err := catalog.NewWord(text, language)
		if err != nil {
			skipped++
			continue
		}
		words = append(words, w)
	}
	if err := it.Err(); err != nil {
		return nil, skipped, err
	}

	return words, skipped, nil
}
