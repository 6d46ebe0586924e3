package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"volscan/internal/common"

	"github.com/rs/zerolog"
)

const (
	defaultDataPath  = "fake_stock_data.txt"
	defaultDelimiter = "tab"
	defaultLogLevel  = "info"
	defaultStrategy  = "heap"
	defaultRisk      = 3
)

var ErrInvalidDelimiter = errors.New("delimiter must be tab, comma or a single character")

// Config keeps the runtime configuration for a run.
type Config struct {
	Data DataConfig
	Log  LogConfig
	Once OnceConfig
}

// DataConfig describes the instrument source.
type DataConfig struct {
	Path   string
	Comma  rune
	Header bool
}

type LogConfig struct {
	Level zerolog.Level
	JSON  bool
}

// OnceConfig is a single query given on the command line instead of prompted.
type OnceConfig struct {
	Enabled  bool
	Query    common.Constraints
	Strategy common.Strategy
}

// Load parses args (without the program name). Flag defaults come from
// VOLSCAN_* environment variables when set.
func Load(args []string) (*Config, error) {
	return load(args, os.Stderr)
}

func load(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("volscan", flag.ContinueOnError)
	fs.SetOutput(output)

	envHeader, err := getBool("VOLSCAN_HEADER", false)
	if err != nil {
		return nil, err
	}
	envJSON, err := getBool("VOLSCAN_LOG_JSON", false)
	if err != nil {
		return nil, err
	}

	path := fs.String("data", getString("VOLSCAN_DATA", defaultDataPath), "Path of the instrument file")
	delim := fs.String("delim", getString("VOLSCAN_DELIM", defaultDelimiter), "Field delimiter: 'tab', 'comma' or a single character")
	header := fs.Bool("header", envHeader, "Skip the first line of the instrument file")
	level := fs.String("log-level", getString("VOLSCAN_LOG_LEVEL", defaultLogLevel), "Log level: debug, info, warn, error")
	jsonLogs := fs.Bool("log-json", envJSON, "Write logs as JSON instead of console text")

	once := fs.Bool("once", false, "Run a single query from flags and exit")
	budget := fs.Float64("budget", 0, "Budget ceiling on the high price (with -once)")
	risk := fs.Int("risk", defaultRisk, "Risk tolerance 1-3 (with -once)")
	sector := fs.String("sector", "", "Preferred sector, blank for any (with -once)")
	strategyStr := fs.String("strategy", defaultStrategy, "Selector: 'heap' or 'map' (with -once)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	comma, err := parseDelimiter(*delim)
	if err != nil {
		return nil, err
	}

	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	strategy, err := common.ParseStrategy(*strategyStr)
	if err != nil {
		return nil, fmt.Errorf("parse strategy %q: %w", *strategyStr, err)
	}

	return &Config{
		Data: DataConfig{
			Path:   *path,
			Comma:  comma,
			Header: *header,
		},
		Log: LogConfig{
			Level: logLevel,
			JSON:  *jsonLogs,
		},
		Once: OnceConfig{
			Enabled: *once,
			Query: common.Constraints{
				Budget:          *budget,
				RiskTolerance:   *risk,
				PreferredSector: *sector,
			},
			Strategy: strategy,
		},
	}, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError || r == '\n' || r == '\r' || r == '"' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("convert %s value %q to bool: %w", key, value, err)
	}
	return parsed, nil
}
