package delta

import (
	"fmt"
	"math"
)

// Asserter binds a tolerance policy to a reporter. Each assertion method
// records exactly one pass/fail result; on failure it emits one diagnostic.
//
// Fatal errors (invalid explicit epsilon) are returned immediately and no
// result is recorded. Out-of-tolerance values are assertion failures, not
// errors: the method records the failure and returns nil.
type Asserter struct {
	tol Tolerance
	rep Reporter
}

// New returns an Asserter using the given tolerance as the default policy.
func New(tol Tolerance, rep Reporter) *Asserter {
	return &Asserter{tol: tol, rep: rep}
}

// NewDefault returns an Asserter with the default tolerance (Fixed 1e-6).
func NewDefault(rep Reporter) *Asserter {
	return New(Default(), rep)
}

// Tolerance returns the asserter's default tolerance policy.
func (a *Asserter) Tolerance() Tolerance {
	return a.tol
}

// Within asserts that got equals want to within the explicit epsilon.
// Returns ErrInvalidEpsilon (and records nothing) when epsilon is zero or
// non-finite. The failure diagnostic pinpoints the first failing element of a
// nested comparison with an "At [i][j]...:" prefix.
func (a *Asserter) Within(got, want Operand, epsilon float64, label string) error {
	tol, err := Fixed(epsilon)
	if err != nil {
		return err
	}
	out := Compare(got, want, tol)
	a.record(out, label)
	return nil
}

// CloseTo asserts that got equals want under the asserter's default tolerance.
// Under a relative tolerance the epsilon is recomputed for every compared
// leaf pair.
func (a *Asserter) CloseTo(got, want Operand, label string) {
	out := Compare(got, want, a.tol)
	a.record(out, label)
}

// NotWithin asserts that got and want differ by at least the explicit epsilon
// somewhere in the structure. Returns ErrInvalidEpsilon when epsilon is zero
// or non-finite. The failure diagnostic reports the requested epsilon and
// carries no failure path.
func (a *Asserter) NotWithin(got, want Operand, epsilon float64, label string) error {
	tol, err := Fixed(epsilon)
	if err != nil {
		return err
	}
	out := Compare(got, want, tol)
	passed := !out.OK
	a.rep.RecordResult(passed, label)
	if !passed {
		a.rep.EmitDiagnostic(fmt.Sprintf("Arguments are equal to within %s",
			FormatValue(math.Abs(epsilon), math.Abs(epsilon))))
	}
	return nil
}

// NotCloseTo asserts that got and want are not equal under the asserter's
// default tolerance. The failure diagnostic reports the configured value with
// a mode-appropriate label.
func (a *Asserter) NotCloseTo(got, want Operand, label string) {
	out := Compare(got, want, a.tol)
	passed := !out.OK
	a.rep.RecordResult(passed, label)
	if !passed {
		v := a.tol.Value()
		if a.tol.Mode() == ModeRelative {
			a.rep.EmitDiagnostic(fmt.Sprintf("Arguments are equal to within relative tolerance %s",
				FormatValue(v, v)))
		} else {
			a.rep.EmitDiagnostic(fmt.Sprintf("Arguments are equal to within %s", FormatValue(v, v)))
		}
	}
}

// record reports an equality outcome, prefixing nested failure diagnostics
// with the index path of the first failing element.
func (a *Asserter) record(out Outcome, label string) {
	a.rep.RecordResult(out.OK, label)
	if out.OK {
		return
	}
	diag := out.Diagnostic
	if len(out.Path) > 0 {
		diag = fmt.Sprintf("At %s: %s", FormatPath(out.Path), diag)
	}
	a.rep.EmitDiagnostic(diag)
}
