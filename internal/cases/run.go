package cases

import (
	"errors"

	deltaerrors "github.com/AndreyAkinshin/numdelta/internal/errors"
	"github.com/AndreyAkinshin/numdelta/pkg/delta"
)

// Runner executes loaded cases against a reporter.
type Runner struct {
	tol delta.Tolerance
	rep delta.Reporter
}

// NewRunner returns a Runner using the given default tolerance.
func NewRunner(tol delta.Tolerance, rep delta.Reporter) *Runner {
	return &Runner{tol: tol, rep: rep}
}

// RunFile loads and runs every case in a single file.
// An invalid explicit epsilon inside a case is a fatal configuration error:
// the run stops immediately and no result is recorded for that case.
func (r *Runner) RunFile(path string) (FileResult, error) {
	cs, err := LoadFile(path)
	if err != nil {
		return FileResult{}, deltaerrors.FileError(path, err.Error())
	}
	return r.Run(cs)
}

// Run executes the given cases in order.
func (r *Runner) Run(cs []Case) (FileResult, error) {
	var result FileResult
	if len(cs) > 0 {
		result.Suite = cs[0].Suite
	}
	asserter := delta.New(r.tol, &countingReporter{rep: r.rep, result: &result})

	for _, c := range cs {
		if err := r.runCase(asserter, c); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (r *Runner) runCase(asserter *delta.Asserter, c Case) error {
	var err error
	switch {
	case c.Expect == ExpectNotEqual && c.Epsilon != nil:
		err = asserter.NotWithin(c.Got, c.Want, *c.Epsilon, c.Label)
	case c.Expect == ExpectNotEqual:
		asserter.NotCloseTo(c.Got, c.Want, c.Label)
	case c.Epsilon != nil:
		err = asserter.Within(c.Got, c.Want, *c.Epsilon, c.Label)
	default:
		asserter.CloseTo(c.Got, c.Want, c.Label)
	}

	if err != nil {
		if errors.Is(err, delta.ErrInvalidEpsilon) {
			return &deltaerrors.DeltaError{
				Kind:    deltaerrors.KindConfig,
				File:    c.Path,
				Message: "case " + c.Label + ": " + err.Error(),
				Cause:   err,
			}
		}
		return err
	}
	return nil
}

// countingReporter forwards to the underlying reporter while tallying
// per-file results.
type countingReporter struct {
	rep    delta.Reporter
	result *FileResult
}

func (c *countingReporter) RecordResult(passed bool, label string) {
	if passed {
		c.result.Passed++
	} else {
		c.result.Failed++
	}
	c.rep.RecordResult(passed, label)
}

func (c *countingReporter) EmitDiagnostic(text string) {
	c.rep.EmitDiagnostic(text)
}
