// Package tap provides a minimal TAP (Test Anything Protocol) producer used
// as the assertion reporter: a test plan, numbered ok/not-ok lines, and
// comment diagnostics.
package tap

import (
	"fmt"
	"io"
	"strings"
)

// Counts holds aggregated assertion results.
type Counts struct {
	Passed int
	Failed int
	Total  int
}

// Writer emits TAP output and tallies results. It implements the
// delta.Reporter interface. Not safe for concurrent use.
type Writer struct {
	out         io.Writer
	counts      Counts
	planned     int
	planWritten bool
}

// New returns a Writer without a declared plan; the plan line is emitted by
// Done once the final count is known.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// NewWithPlan returns a Writer that declares the plan up front ("1..n").
func NewWithPlan(out io.Writer, n int) *Writer {
	w := &Writer{out: out, planned: n, planWritten: true}
	fmt.Fprintf(out, "1..%d\n", n)
	return w
}

// RecordResult writes the next ok/not-ok line.
func (w *Writer) RecordResult(passed bool, label string) {
	w.counts.Total++
	status := "ok"
	if passed {
		w.counts.Passed++
	} else {
		w.counts.Failed++
		status = "not ok"
	}
	if label == "" {
		fmt.Fprintf(w.out, "%s %d\n", status, w.counts.Total)
		return
	}
	fmt.Fprintf(w.out, "%s %d - %s\n", status, w.counts.Total, label)
}

// EmitDiagnostic writes diagnostic text as TAP comment lines.
func (w *Writer) EmitDiagnostic(text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w.out, "# %s\n", line)
	}
}

// Counts returns the results recorded so far.
func (w *Writer) Counts() Counts {
	return w.counts
}

// Done finalizes the stream. Without an up-front plan it emits the trailing
// plan line. It returns an error when a declared plan does not match the
// number of recorded results.
func (w *Writer) Done() error {
	if !w.planWritten {
		fmt.Fprintf(w.out, "1..%d\n", w.counts.Total)
		return nil
	}
	if w.counts.Total != w.planned {
		return fmt.Errorf("planned %d assertions but ran %d", w.planned, w.counts.Total)
	}
	return nil
}
