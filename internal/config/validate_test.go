package config

import (
	"testing"

	"github.com/AndreyAkinshin/numdelta/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	within := 1e-6
	relative := 1e-3
	zero := 0.0

	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"no tolerance block", &Config{}, false},
		{"empty tolerance block", &Config{Tolerance: &ToleranceConfig{}}, false},
		{"within only", &Config{Tolerance: &ToleranceConfig{Within: &within}}, false},
		{"relative only", &Config{Tolerance: &ToleranceConfig{Relative: &relative}}, false},
		{"both set", &Config{Tolerance: &ToleranceConfig{Within: &within, Relative: &relative}}, true},
		{"zero within", &Config{Tolerance: &ToleranceConfig{Within: &zero}}, true},
		{"zero relative", &Config{Tolerance: &ToleranceConfig{Relative: &zero}}, true},
		{"negative plan", &Config{Plan: -1}, true},
		{"positive plan", &Config{Plan: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.GetExitCode(err) != errors.ExitConfigError {
				t.Errorf("validation error has exit code %d, want %d",
					errors.GetExitCode(err), errors.ExitConfigError)
			}
		})
	}
}
