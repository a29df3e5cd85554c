package delta

// TB is the subset of testing.TB the test reporter needs. Declared locally so
// the package does not import the testing package outside of its own tests.
type TB interface {
	Helper()
	Errorf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// TBReporter adapts a *testing.T (or anything implementing TB) to the
// Reporter interface: failed assertions fail the test, diagnostics go to the
// test log.
type TBReporter struct {
	tb TB
}

// NewTBReporter returns a Reporter backed by tb.
func NewTBReporter(tb TB) *TBReporter {
	return &TBReporter{tb: tb}
}

// RecordResult fails the test when passed is false.
func (r *TBReporter) RecordResult(passed bool, label string) {
	r.tb.Helper()
	if !passed {
		r.tb.Errorf("assertion failed: %s", label)
	}
}

// EmitDiagnostic logs the diagnostic text.
func (r *TBReporter) EmitDiagnostic(text string) {
	r.tb.Helper()
	r.tb.Logf("%s", text)
}
