package config

import (
	"github.com/AndreyAkinshin/numdelta/internal/errors"
)

// Validate checks the tolerance options. Fixed and relative tolerances are
// mutually exclusive, and a zero value for either is a configuration error
// rather than a silent fall-through to the default.
func Validate(cfg *Config) error {
	if cfg.Tolerance == nil {
		return nil
	}

	t := cfg.Tolerance
	if t.Within != nil && t.Relative != nil {
		return errors.Config(`"within" and "relative" are mutually exclusive`)
	}
	if t.Within != nil && *t.Within == 0 {
		return errors.Config(`"within" must be non-zero`)
	}
	if t.Relative != nil && *t.Relative == 0 {
		return errors.Config(`"relative" must be non-zero`)
	}

	if cfg.Plan < 0 {
		return errors.Configf(`"plan" must be positive, got %d`, cfg.Plan)
	}

	return nil
}
