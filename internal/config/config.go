// Package config loads the runtime configuration for the linearclf CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the knobs for a verification run.
type Config struct {
	Classes   int     `yaml:"classes"`
	Features  int     `yaml:"features"`
	Samples   int     `yaml:"samples"`
	Reg       float64 `yaml:"reg"`
	Seed      int64   `yaml:"seed"`
	Tolerance float64 `yaml:"tolerance"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Classes:   10,
		Features:  64,
		Samples:   128,
		Reg:       0.1,
		Seed:      42,
		Tolerance: 1e-4,
	}
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field is in range.
func (c *Config) Validate() error {
	if c.Classes < 2 {
		return fmt.Errorf("classes must be >= 2, got %d", c.Classes)
	}
	if c.Features <= 0 {
		return fmt.Errorf("features must be > 0, got %d", c.Features)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0, got %d", c.Samples)
	}
	if c.Reg < 0 {
		return fmt.Errorf("reg must be >= 0, got %g", c.Reg)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be > 0, got %g", c.Tolerance)
	}
	return nil
}
