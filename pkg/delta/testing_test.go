package delta

import (
	"fmt"
	"strings"
	"testing"
)

// fakeTB records calls made by TBReporter.
type fakeTB struct {
	helperCalls int
	errors      []string
	logs        []string
}

func (f *fakeTB) Helper() { f.helperCalls++ }

func (f *fakeTB) Errorf(format string, args ...interface{}) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeTB) Logf(format string, args ...interface{}) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

func TestTBReporter_PassingAssertion(t *testing.T) {
	t.Parallel()

	tb := &fakeTB{}
	a := NewDefault(NewTBReporter(tb))

	a.CloseTo(N(1.0), N(1.0), "identity")

	if len(tb.errors) != 0 {
		t.Errorf("passing assertion failed the test: %v", tb.errors)
	}
	if len(tb.logs) != 0 {
		t.Errorf("passing assertion logged diagnostics: %v", tb.logs)
	}
}

func TestTBReporter_FailingAssertion(t *testing.T) {
	t.Parallel()

	tb := &fakeTB{}
	a := NewDefault(NewTBReporter(tb))

	a.CloseTo(N(1.0), N(2.0), "mismatch")

	if len(tb.errors) != 1 {
		t.Fatalf("recorded %d test errors, want 1", len(tb.errors))
	}
	if !strings.Contains(tb.errors[0], "mismatch") {
		t.Errorf("test error %q does not carry the label", tb.errors[0])
	}
	if len(tb.logs) != 1 || !strings.Contains(tb.logs[0], "are not equal to within") {
		t.Errorf("diagnostic logs = %v", tb.logs)
	}
}

func TestTBReporter_IsUsableInTests(t *testing.T) {
	t.Parallel()

	// *testing.T satisfies the TB interface; passing assertions must leave
	// the real test green.
	a := NewDefault(NewTBReporter(t))
	a.CloseTo(Numbers(1.5, 2.5), Numbers(1.5, 2.5), "self comparison")
}
