// Package config provides configuration loading and validation for
// numdelta.json.
package config

import (
	"fmt"
	"os"

	"github.com/AndreyAkinshin/numdelta/internal/schema"
	"github.com/AndreyAkinshin/numdelta/pkg/delta"
)

// DefaultFileName is the configuration file looked up when --config is not
// given.
const DefaultFileName = "numdelta.json"

// Config represents the complete numdelta.json configuration.
type Config struct {
	Tolerance *ToleranceConfig `json:"tolerance,omitempty"`
	Plan      int              `json:"plan,omitempty"`
	Cases     *CasesConfig     `json:"cases,omitempty"`
}

// ToleranceConfig selects the default tolerance policy. At most one of the
// two fields may be set. Pointers distinguish an explicit zero (a
// configuration error) from an absent option.
type ToleranceConfig struct {
	Within   *float64 `json:"within,omitempty"`
	Relative *float64 `json:"relative,omitempty"`
}

// CasesConfig configures case-file discovery.
type CasesConfig struct {
	Directory string `json:"directory,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// Load reads and parses a numdelta.json configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadAndValidate reads a config file, schema-validates it, applies defaults,
// and validates the tolerance options.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// ResolveTolerance converts the configured tolerance options into a
// delta.Tolerance. Assumes the config has been validated.
func (c *Config) ResolveTolerance() (delta.Tolerance, error) {
	if c.Tolerance == nil {
		return delta.Default(), nil
	}
	switch {
	case c.Tolerance.Within != nil:
		return delta.Fixed(*c.Tolerance.Within)
	case c.Tolerance.Relative != nil:
		return delta.Relative(*c.Tolerance.Relative)
	default:
		return delta.Default(), nil
	}
}
