package delta

import "errors"

// ErrInvalidEpsilon is returned by the explicit-epsilon entry points when the
// supplied epsilon is zero or non-finite. It is a caller contract violation,
// reported before any comparison is attempted.
var ErrInvalidEpsilon = errors.New("invalid epsilon")

// Reporter records assertion results and failure diagnostics. It owns test
// counting and plan semantics; the asserter calls RecordResult exactly once
// per assertion and EmitDiagnostic only for failures.
type Reporter interface {
	RecordResult(passed bool, label string)
	EmitDiagnostic(text string)
}
