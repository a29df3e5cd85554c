package delta

import (
	"fmt"
	"math"
)

// Outcome is the result of one structural comparison.
type Outcome struct {
	// OK reports whether every compared pair was within tolerance.
	OK bool
	// Path is the index chain (outermost first) of the first failing element.
	// Empty for top-level scalar comparisons and for OK outcomes.
	Path []int
	// Diagnostic is a human-readable explanation of the first failure.
	// Empty for OK outcomes.
	Diagnostic string
}

// Compare recursively compares got against want under the given tolerance.
//
// Sequences must match in shape: both sides sequences of equal length at every
// level, otherwise the outcome is a structural failure at the mismatching
// level. Elements are compared depth-first in index order and the first
// failing index wins; siblings after it are never compared.
//
// Numbers p and q are equal when p == q or |p-q| < epsilon (strict), where
// epsilon is resolved per pair via ResolveEpsilon. The exact-equality check is
// load-bearing: two exact zeros compare equal even when a relative epsilon
// degenerates to zero.
//
// Numeric mismatches are reported through the outcome, never as errors.
func Compare(got, want Operand, tol Tolerance) Outcome {
	if got.IsSequence() || want.IsSequence() {
		return compareSequences(got, want, tol)
	}

	p, q := got.Number(), want.Number()
	epsilon := ResolveEpsilon(p, q, tol)
	if p == q || math.Abs(p-q) < epsilon {
		return Outcome{OK: true}
	}
	return Outcome{
		Diagnostic: fmt.Sprintf("%s and %s are not equal to within %s",
			FormatValue(p, epsilon), FormatValue(q, epsilon), FormatValue(epsilon, epsilon)),
	}
}

func compareSequences(got, want Operand, tol Tolerance) Outcome {
	switch {
	case !got.IsSequence():
		return Outcome{Diagnostic: fmt.Sprintf("Got a number, but expected an array of length %d", want.Len())}
	case !want.IsSequence():
		return Outcome{Diagnostic: fmt.Sprintf("Got an array of length %d, but expected a number", got.Len())}
	case got.Len() != want.Len():
		return Outcome{Diagnostic: fmt.Sprintf("Got an array of length %d, but expected an array of length %d",
			got.Len(), want.Len())}
	}

	for i := 0; i < got.Len(); i++ {
		if out := Compare(got.At(i), want.At(i), tol); !out.OK {
			out.Path = append([]int{i}, out.Path...)
			return out
		}
	}
	return Outcome{OK: true}
}
