// Package cases provides the case-file system for numdelta: loading
// assertion cases from YAML/JSON files and running them against a reporter.
package cases

import (
	"github.com/AndreyAkinshin/numdelta/pkg/delta"
)

// Expectation is the relation a case asserts between got and want.
type Expectation string

const (
	// ExpectEqual asserts the operands are equal within tolerance.
	ExpectEqual Expectation = "equal"
	// ExpectNotEqual asserts the operands differ beyond tolerance.
	ExpectNotEqual Expectation = "not-equal"
)

// Case represents a single assertion loaded from a case file.
type Case struct {
	Label   string        // Assertion label (defaults to "<file> #<n>")
	Suite   string        // Suite name (file base name)
	Path    string        // Full path to the case file
	Got     delta.Operand // Actual value
	Want    delta.Operand // Expected value
	Epsilon *float64      // Explicit epsilon; nil means the configured tolerance
	Expect  Expectation   // Expected relation
}

// FileResult aggregates the results of one case file.
type FileResult struct {
	Suite  string
	Passed int
	Failed int
}

// Total returns the number of assertions run for the file.
func (r FileResult) Total() int {
	return r.Passed + r.Failed
}
