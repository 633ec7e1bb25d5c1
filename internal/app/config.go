package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // a .hcl file, or a directory of them

	Output      string // "text" or "json"
	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates a Config and fills in defaults for the optional
// fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.Output)
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return &cfg, nil
}
