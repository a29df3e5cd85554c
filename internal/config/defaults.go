package config

// Default configuration values.
const (
	DefaultCasesDirectory = "cases"
	DefaultCasesPattern   = "*.yaml"
)

// applyDefaults fills in default values for unset configuration fields.
// The tolerance block is intentionally left untouched: an absent block means
// the built-in Fixed(1e-6) default, resolved by ResolveTolerance.
func applyDefaults(cfg *Config) {
	if cfg.Cases == nil {
		cfg.Cases = &CasesConfig{}
	}
	if cfg.Cases.Directory == "" {
		cfg.Cases.Directory = DefaultCasesDirectory
	}
	if cfg.Cases.Pattern == "" {
		cfg.Cases.Pattern = DefaultCasesPattern
	}
}
