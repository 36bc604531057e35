package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Passes        int      `env:"TOURNAMENT_PASSES" envDefault:"100"`
	MinRounds     int      `env:"TOURNAMENT_MIN_ROUNDS" envDefault:"90"`
	MaxRounds     int      `env:"TOURNAMENT_MAX_ROUNDS" envDefault:"110"`
	Seed          int64    `env:"TOURNAMENT_SEED" envDefault:"0"`
	Workers       int      `env:"TOURNAMENT_WORKERS" envDefault:"1"`
	Roster        []string `env:"TOURNAMENT_ROSTER" envSeparator:","`
	ProgressEvery int      `env:"TOURNAMENT_PROGRESS_EVERY" envDefault:"10000"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	RunID         string   `env:"RUN_ID"`
}

// Load reads an optional .env file and then the process environment. A .env
// that exists but cannot be parsed is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would otherwise surface as a division by
// zero or an empty schedule in the middle of a run.
func (c *Config) Validate() error {
	var errs []error
	if c.Passes <= 0 {
		errs = append(errs, fmt.Errorf("TOURNAMENT_PASSES must be positive, got %d", c.Passes))
	}
	if c.MinRounds <= 0 {
		errs = append(errs, fmt.Errorf("TOURNAMENT_MIN_ROUNDS must be positive, got %d", c.MinRounds))
	}
	if c.MaxRounds < c.MinRounds {
		errs = append(errs, fmt.Errorf("TOURNAMENT_MAX_ROUNDS (%d) is below TOURNAMENT_MIN_ROUNDS (%d)", c.MaxRounds, c.MinRounds))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("TOURNAMENT_WORKERS must be positive, got %d", c.Workers))
	}
	if c.ProgressEvery < 0 {
		errs = append(errs, fmt.Errorf("TOURNAMENT_PROGRESS_EVERY must not be negative, got %d", c.ProgressEvery))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not a known level", c.LogLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
