package config

import (
	"errors"
	"fmt"
	"os"

	"go-simpler.org/env"
)

type Config struct {
	AppEnv        string `env:"APP_ENV" default:"dev"`
	LogLevel      string `env:"LOG_LEVEL" default:"warn"`
	TopN          int    `env:"SENTILEX_TOP_N" default:"10"`
	Workers       int    `env:"SENTILEX_WORKERS" default:"4"`
	PositiveWords string `env:"SENTILEX_POSITIVE_WORDS"`
	NegativeWords string `env:"SENTILEX_NEGATIVE_WORDS"`
}

// Load reads the env file selected by APP_ENV and maps the environment onto
// a Config.
func Load() (*Config, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	LoadEnv(appEnv)

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate is also called after CLI flags have been applied on top of the
// environment.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("top N must not be negative, got %d", c.TopN)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if (c.PositiveWords == "") != (c.NegativeWords == "") {
		return errors.New("positive and negative word lists must be set together")
	}
	return nil
}

// HasCustomLexicon reports whether word lists on disk replace the embedded ones.
func (c *Config) HasCustomLexicon() bool {
	return c.PositiveWords != "" && c.NegativeWords != ""
}
