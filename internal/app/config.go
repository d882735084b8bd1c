package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FixturesDir string // directory of .src fixture sources
	OutputDir   string // directory receiving binaries and cache markers

	LogFormat string
	LogLevel  string
}

// NewConfig validates the given configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FixturesDir == "" {
		return nil, errors.New("FixturesDir is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
