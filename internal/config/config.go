package config

import "time"

// Aggressive-mode settings. "auto" enables the length-adaptive threshold
// only when frequency filtering is active.
const (
	AggressiveAuto = "auto"
	AggressiveOn   = "on"
	AggressiveOff  = "off"
)

// Word source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Solver   SolverConfig   `yaml:"solver"`
	Wordlist WordlistConfig `yaml:"wordlist"`
	Database DatabaseConfig `yaml:"database"`
	Wordfreq WordfreqConfig `yaml:"wordfreq"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// PuzzleConfig holds the puzzle letters. Letters must contain exactly seven
// distinct characters and center must be one of them; full validation happens
// in domain.NewPuzzle.
type PuzzleConfig struct {
	Letters string `yaml:"letters" env:"PUZZLE_LETTERS"`
	Center  string `yaml:"center"  env:"PUZZLE_CENTER"`
}

// SolverConfig holds scoring and filtering parameters.
type SolverConfig struct {
	MinLen        int     `yaml:"min_len"        env:"SOLVER_MIN_LEN"        env-default:"4"`
	MaxLen        int     `yaml:"max_len"        env:"SOLVER_MAX_LEN"        env-default:"10"`
	PangramBonus  int     `yaml:"pangram_bonus"  env:"SOLVER_PANGRAM_BONUS"  env-default:"7"`
	MinZipf       float64 `yaml:"min_zipf"       env:"SOLVER_MIN_ZIPF"       env-default:"3.6"`
	FilterPlurals bool    `yaml:"filter_plurals" env:"SOLVER_FILTER_PLURALS" env-default:"true"`
	FilterObscure bool    `yaml:"filter_obscure" env:"SOLVER_FILTER_OBSCURE" env-default:"true"`
	Aggressive    string  `yaml:"aggressive"     env:"SOLVER_AGGRESSIVE"     env-default:"auto"`

	// AggressiveResolved is derived from Aggressive during validation.
	AggressiveResolved bool `yaml:"-" env:"-"`
}

// WordlistConfig selects where candidate words come from.
type WordlistConfig struct {
	Source   string `yaml:"source"   env:"WORDLIST_SOURCE"   env-default:"file"`
	Path     string `yaml:"path"     env:"WORDLIST_PATH"     env-default:"/usr/share/dict/words"`
	Language string `yaml:"language" env:"WORDLIST_LANGUAGE" env-default:"en"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// required when the wordlist source is postgres.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// WordfreqConfig holds frequency service settings. An empty base URL runs the
// solver in degraded mode without frequency filtering.
type WordfreqConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"WORDFREQ_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout"    env:"WORDFREQ_TIMEOUT"    env-default:"10s"`
	Language  string        `yaml:"language"   env:"WORDFREQ_LANGUAGE"   env-default:"en"`
	CacheSize int           `yaml:"cache_size" env:"WORDFREQ_CACHE_SIZE" env-default:"50000"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	TopN  int  `yaml:"top_n" env:"OUTPUT_TOP_N" env-default:"50"`
	Hints bool `yaml:"hints" env:"OUTPUT_HINTS" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// FrequencyEnabled reports whether frequency filtering will run: a threshold
// is set and a frequency service is configured.
func (c *Config) FrequencyEnabled() bool {
	return c.Solver.MinZipf > 0 && c.Wordfreq.BaseURL != ""
}
