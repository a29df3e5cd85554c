package cases

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/numdelta/pkg/delta"
)

// rawFile mirrors the case-file structure before operand conversion.
type rawFile struct {
	Cases []rawCase `json:"cases" yaml:"cases"`
}

type rawCase struct {
	Label  string      `json:"label" yaml:"label"`
	Got    interface{} `json:"got" yaml:"got"`
	Want   interface{} `json:"want" yaml:"want"`
	Within *float64    `json:"within" yaml:"within"`
	Expect string      `json:"expect" yaml:"expect"`
}

// LoadFile loads all cases from a single YAML or JSON case file.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawFile
	if IsYAML(path) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if len(raw.Cases) == 0 {
		return nil, fmt.Errorf("no cases defined")
	}

	suite := SuiteName(path)
	result := make([]Case, 0, len(raw.Cases))
	for i, rc := range raw.Cases {
		c, err := convertCase(rc, i)
		if err != nil {
			return nil, fmt.Errorf("case #%d: %w", i+1, err)
		}
		c.Suite = suite
		c.Path = path
		if c.Label == "" {
			c.Label = fmt.Sprintf("%s #%d", suite, i+1)
		}
		result = append(result, c)
	}

	return result, nil
}

func convertCase(rc rawCase, index int) (Case, error) {
	if rc.Got == nil {
		return Case{}, fmt.Errorf("missing required field %q", "got")
	}
	if rc.Want == nil {
		return Case{}, fmt.Errorf("missing required field %q", "want")
	}

	got, err := delta.FromValue(rc.Got)
	if err != nil {
		return Case{}, fmt.Errorf("got: %w", err)
	}
	want, err := delta.FromValue(rc.Want)
	if err != nil {
		return Case{}, fmt.Errorf("want: %w", err)
	}

	expect := Expectation(rc.Expect)
	switch expect {
	case "":
		expect = ExpectEqual
	case ExpectEqual, ExpectNotEqual:
	default:
		return Case{}, fmt.Errorf("invalid expect value %q (must be %q or %q)",
			rc.Expect, ExpectEqual, ExpectNotEqual)
	}

	return Case{
		Label:   rc.Label,
		Got:     got,
		Want:    want,
		Epsilon: rc.Within,
		Expect:  expect,
	}, nil
}

// Discover finds case files in dir matching the filename glob pattern.
// Results are sorted for deterministic run order.
func Discover(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if matched {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// SuiteName derives a suite name from a case-file path.
func SuiteName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsYAML reports whether the path has a YAML extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
