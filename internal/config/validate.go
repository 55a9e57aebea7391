package config

import "fmt"

// Validate performs cross-field validation and resolves derived values.
// Load calls it automatically. Puzzle letters are checked for presence only;
// domain.NewPuzzle owns the structural rules.
func (c *Config) Validate() error {
	if c.Puzzle.Letters == "" {
		return fmt.Errorf("puzzle.letters is required")
	}
	if c.Puzzle.Center == "" {
		return fmt.Errorf("puzzle.center is required")
	}

	if err := c.Solver.validate(c.FrequencyEnabled()); err != nil {
		return fmt.Errorf("solver: %w", err)
	}

	switch c.Wordlist.Source {
	case SourceFile:
		if c.Wordlist.Path == "" {
			return fmt.Errorf("wordlist.path is required for the file source")
		}
	case SourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres source")
		}
	default:
		return fmt.Errorf("wordlist.source must be %q or %q (got %q)", SourceFile, SourcePostgres, c.Wordlist.Source)
	}

	if c.Wordfreq.CacheSize <= 0 {
		return fmt.Errorf("wordfreq.cache_size must be > 0 (got %d)", c.Wordfreq.CacheSize)
	}
	if c.Output.TopN < 0 {
		return fmt.Errorf("output.top_n must be >= 0 (got %d)", c.Output.TopN)
	}

	return nil
}

func (s *SolverConfig) validate(frequencyEnabled bool) error {
	if s.MinLen < 1 {
		return fmt.Errorf("min_len must be >= 1 (got %d)", s.MinLen)
	}
	if s.MaxLen < 0 {
		return fmt.Errorf("max_len must be >= 0 (got %d)", s.MaxLen)
	}
	if s.MaxLen > 0 && s.MaxLen < s.MinLen {
		return fmt.Errorf("max_len %d is below min_len %d", s.MaxLen, s.MinLen)
	}
	if s.PangramBonus < 0 {
		return fmt.Errorf("pangram_bonus must be >= 0 (got %d)", s.PangramBonus)
	}
	if s.MinZipf < 0 {
		return fmt.Errorf("min_zipf must be >= 0 (got %v)", s.MinZipf)
	}

	switch s.Aggressive {
	case AggressiveOn:
		s.AggressiveResolved = true
	case AggressiveOff:
		s.AggressiveResolved = false
	case AggressiveAuto:
		s.AggressiveResolved = frequencyEnabled
	default:
		return fmt.Errorf("aggressive must be %q, %q or %q (got %q)",
			AggressiveAuto, AggressiveOn, AggressiveOff, s.Aggressive)
	}

	return nil
}
