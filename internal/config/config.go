package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats understood by the report writer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds driver settings read from the environment.
type Config struct {
	Format  string `env:"GAMEROOM_FORMAT" envDefault:"text"`
	Verbose bool   `env:"GAMEROOM_VERBOSE"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the driver cannot honor.
func (c Config) Validate() error {
	return ValidateFormat(c.Format)
}

// ValidateFormat reports whether format is a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatJSON)
}
