package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_Print(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Print("hello %s", "world")

	if got := stdout.String(); got != "hello world" {
		t.Errorf("Print() = %q, want %q", got, "hello world")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("count: %d", 3)

	if got := stdout.String(); got != "count: 3\n" {
		t.Errorf("Println() = %q", got)
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, stdout, stderr := newTestWriter()

	w.Errorln("failed: %s", "reason")

	if stdout.Len() != 0 {
		t.Error("Errorln wrote to stdout")
	}
	if got := stderr.String(); got != "failed: reason\n" {
		t.Errorf("Errorln() = %q", got)
	}
}

func TestWriter_Info_Quiet(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SetQuiet(true)
	w.Info("hidden")
	if stdout.Len() != 0 {
		t.Error("Info printed in quiet mode")
	}

	w.SetQuiet(false)
	w.Info("visible")
	if got := stdout.String(); got != "visible\n" {
		t.Errorf("Info() = %q", got)
	}
}

func TestWriter_Warning(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Warning("case file %s skipped", "a.yaml")

	if got := stderr.String(); got != "warning: case file a.yaml skipped\n" {
		t.Errorf("Warning() = %q", got)
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.ErrorPrefix("invalid config")

	if got := stderr.String(); got != "numdelta: invalid config\n" {
		t.Errorf("ErrorPrefix() = %q", got)
	}
}

func TestWriter_Summary(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SummaryHeader("Summary")
	w.SummaryPassed("Smoke", "3/3 passed")
	w.SummaryFailed("Matrix", "1/2 passed")
	w.SummaryItem("Total", "5")

	got := stdout.String()
	for _, want := range []string{"=== Summary ===", "Smoke: 3/3 passed", "Matrix: 1/2 passed", "Total: 5"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output %q missing %q", got, want)
		}
	}
}

func TestWriter_Summary_Quiet(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.SetQuiet(true)

	w.SummaryHeader("Summary")
	w.SummaryItem("Total", "5")
	w.FinalSuccess("All passed")

	if stdout.Len() != 0 {
		t.Errorf("quiet mode still printed summary: %q", stdout.String())
	}
}

func TestWriter_FinalFailure_IgnoresQuiet(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.SetQuiet(true)

	w.FinalFailure("2 of 5 assertions failed")

	if !strings.Contains(stdout.String(), "2 of 5 assertions failed") {
		t.Errorf("FinalFailure suppressed in quiet mode: %q", stdout.String())
	}
}

func TestWriter_ValidationSuccess(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.ValidationSuccess("%s is valid", "numdelta.json")

	if got := stdout.String(); got != "numdelta.json is valid\n" {
		t.Errorf("ValidationSuccess() = %q", got)
	}
}

func TestWriter_Color(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := NewWithWriters(stdout, stderr, true)

	w.ErrorPrefix("boom")

	if !strings.Contains(stderr.String(), "\033[31m") {
		t.Errorf("colored ErrorPrefix missing ANSI codes: %q", stderr.String())
	}

	w.SetColor(false)
	stderr.Reset()
	w.ErrorPrefix("boom")
	if strings.Contains(stderr.String(), "\033[") {
		t.Errorf("SetColor(false) still emits ANSI codes: %q", stderr.String())
	}
}
