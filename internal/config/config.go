// Package config loads geowords command configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/andreiashu/geowords"
	"github.com/andreiashu/geowords/internal/logging"
)

// Config is the process configuration shared by the geowords commands.
// Command-line flags override these values.
type Config struct {
	PrecisionMeters    float64 `env:"GEOWORDS_PRECISION_METERS" envDefault:"100"`
	DegreeLengthMeters float64 `env:"GEOWORDS_DEGREE_LENGTH_METERS" envDefault:"111320"`
	Rounding           string  `env:"GEOWORDS_ROUNDING" envDefault:"half-even"`
	WordFile           string  `env:"GEOWORDS_WORD_FILE"`
	SnapshotFile       string  `env:"GEOWORDS_SNAPSHOT_FILE"`
	LogLevel           string  `env:"GEOWORDS_LOG_LEVEL" envDefault:"info"`
	LogFormat          string  `env:"GEOWORDS_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the codec cannot be built from.
func (c Config) Validate() error {
	if !(c.PrecisionMeters > 0) {
		return fmt.Errorf("%w: GEOWORDS_PRECISION_METERS=%v", geowords.ErrInvalidPrecision, c.PrecisionMeters)
	}
	if !(c.DegreeLengthMeters > 0) {
		return fmt.Errorf("%w: GEOWORDS_DEGREE_LENGTH_METERS=%v", geowords.ErrInvalidPrecision, c.DegreeLengthMeters)
	}
	if _, err := ParseRounding(c.Rounding); err != nil {
		return err
	}
	return nil
}

// ParseRounding maps a rounding name to a geowords.Rounding.
func ParseRounding(s string) (geowords.Rounding, error) {
	switch s {
	case "", "half-even", "even":
		return geowords.RoundHalfEven, nil
	case "half-away-from-zero", "half-up", "away":
		return geowords.RoundHalfAwayFromZero, nil
	}
	return 0, fmt.Errorf("%w: unknown rounding %q", geowords.ErrInvalidPrecision, s)
}

// Logger builds the logger described by the config.
func (c Config) Logger() *slog.Logger {
	return logging.New(logging.Config{Level: c.LogLevel, Format: c.LogFormat})
}

// Options converts the config into codec options.
func (c Config) Options(logger *slog.Logger) ([]geowords.Option, error) {
	r, err := ParseRounding(c.Rounding)
	if err != nil {
		return nil, err
	}
	opts := []geowords.Option{
		geowords.WithPrecision(c.PrecisionMeters),
		geowords.WithDegreeLength(c.DegreeLengthMeters),
		geowords.WithRounding(r),
		geowords.WithLogger(logger),
	}
	if c.WordFile != "" {
		opts = append(opts, geowords.WithWordFile(c.WordFile))
	}
	if c.SnapshotFile != "" {
		opts = append(opts, geowords.WithSnapshot(c.SnapshotFile))
	}
	return opts, nil
}

// Exitf prints a formatted error to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
