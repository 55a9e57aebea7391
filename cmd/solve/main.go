// Command solve enumerates and scores Spelling Bee answers for one puzzle.
// Candidate words stream from a flat word list or the PostgreSQL catalog,
// pass through the structural and quality filters, and land on stdout as a
// ranked report. Logs go to stderr.
//
// Flags (all override config):
//
//	--letters   seven distinct puzzle letters
//	--center    required center letter
//	--wordlist  path to the word list file
//	--source    word source: file or postgres
//	--top       number of words to display
//	--hints     show spoiler-free hint counts
//	--no-freq   disable frequency filtering
//	--dry-run   validate configuration and exit
//
// Exit codes: 0 = success, 1 = configuration error or unavailable word source.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/spellingbee/internal/adapter/postgres"
	"github.com/heartmarshall/spellingbee/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/spellingbee/internal/adapter/provider/zipf"
	"github.com/heartmarshall/spellingbee/internal/app"
	"github.com/heartmarshall/spellingbee/internal/config"
	"github.com/heartmarshall/spellingbee/internal/domain"
	"github.com/heartmarshall/spellingbee/internal/render"
	"github.com/heartmarshall/spellingbee/internal/solver"
	"github.com/heartmarshall/spellingbee/internal/wordsource"
)

// Compile-time interface assertions.
var (
	_ solver.Oracle     = (*zipf.Cached)(nil)
	_ wordsource.Source = (*catalog.Source)(nil)
)

func main() {
	lettersFlag := flag.String("letters", "", "seven distinct puzzle letters")
	centerFlag := flag.String("center", "", "required center letter")
	wordlistFlag := flag.String("wordlist", "", "path to the word list file")
	sourceFlag := flag.String("source", "", "word source: file or postgres")
	topFlag := flag.Int("top", -1, "number of words to display")
	hintsFlag := flag.Bool("hints", false, "show spoiler-free hint counts")
	noFreqFlag := flag.Bool("no-freq", false, "disable frequency filtering")
	dryRunFlag := flag.Bool("dry-run", false, "validate configuration and exit")
	flag.Parse()

	cfg, err := config.Read()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *lettersFlag != "" {
		cfg.Puzzle.Letters = *lettersFlag
	}
	if *centerFlag != "" {
		cfg.Puzzle.Center = *centerFlag
	}
	if *wordlistFlag != "" {
		cfg.Wordlist.Path = *wordlistFlag
	}
	if *sourceFlag != "" {
		cfg.Wordlist.Source = *sourceFlag
	}
	if *topFlag >= 0 {
		cfg.Output.TopN = *topFlag
	}
	if *hintsFlag {
		cfg.Output.Hints = true
	}
	if *noFreqFlag {
		cfg.Solver.MinZipf = 0
		cfg.Wordfreq.BaseURL = ""
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	puzzle, err := domain.NewPuzzle(cfg.Puzzle.Letters, cfg.Puzzle.Center)
	if err != nil {
		logger.Error("invalid puzzle", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("solver starting",
		slog.String("version", app.BuildVersion()),
		slog.String("letters", puzzle.Letters()),
		slog.String("center", string(puzzle.Center())),
		slog.String("source", cfg.Wordlist.Source),
	)

	if *dryRunFlag {
		logger.Info("configuration valid")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var src wordsource.Source
	switch cfg.Wordlist.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		src = catalog.NewSource(pool, cfg.Wordlist.Language, puzzle, cfg.Solver.MinLen, cfg.Solver.MaxLen)
	default:
		src = wordsource.NewFile(cfg.Wordlist.Path)
	}

	oracle := buildOracle(cfg, logger)

	opts := solver.Options{
		MinLen:        cfg.Solver.MinLen,
		MaxLen:        cfg.Solver.MaxLen,
		PangramBonus:  cfg.Solver.PangramBonus,
		MinZipf:       cfg.Solver.MinZipf,
		FilterPlurals: cfg.Solver.FilterPlurals,
		FilterObscure: cfg.Solver.FilterObscure,
		Aggressive:    cfg.Solver.AggressiveResolved,
	}

	pipeline := solver.New(logger, puzzle, opts, solver.DefaultHeuristics(), oracle)

	sol, err := pipeline.Solve(ctx, src)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			logger.Error("word source unavailable", slog.String("error", err.Error()))
		} else {
			logger.Error("solve failed", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	view := render.Options{TopN: cfg.Output.TopN, Hints: cfg.Output.Hints}
	if err := render.Results(os.Stdout, sol, view); err != nil {
		logger.Error("write results", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildOracle wires the frequency oracle when a service is configured.
// Returns nil for degraded mode.
func buildOracle(cfg *config.Config, logger *slog.Logger) solver.Oracle {
	if !cfg.FrequencyEnabled() {
		return nil
	}

	provider := zipf.NewProvider(cfg.Wordfreq.BaseURL, cfg.Wordfreq.Language, cfg.Wordfreq.Timeout, logger)
	cached, err := zipf.NewCached(provider, cfg.Wordfreq.CacheSize)
	if err != nil {
		logger.Warn("frequency cache unavailable; running without frequency filtering",
			slog.String("error", err.Error()))
		return nil
	}
	return cached
}
