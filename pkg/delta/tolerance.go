package delta

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the fixed tolerance used when nothing is configured.
const DefaultEpsilon = 1e-6

// Mode selects how the effective epsilon is derived for a comparison.
type Mode string

const (
	// ModeFixed uses a constant epsilon for every compared pair.
	ModeFixed Mode = "fixed"
	// ModeRelative scales the epsilon to the larger magnitude of each
	// compared pair (ratio * max(|p|, |q|)).
	ModeRelative Mode = "relative"
)

// Tolerance is an immutable tolerance policy: exactly one of a fixed epsilon
// or a relative ratio. Construct it once at program start and pass it into
// every assertion call site.
type Tolerance struct {
	mode  Mode
	value float64
}

// Fixed returns a fixed tolerance with the given epsilon.
// The sign of epsilon is irrelevant; zero or non-finite values are rejected.
func Fixed(epsilon float64) (Tolerance, error) {
	if err := checkEpsilon(epsilon); err != nil {
		return Tolerance{}, err
	}
	return Tolerance{mode: ModeFixed, value: math.Abs(epsilon)}, nil
}

// Relative returns a relative tolerance with the given ratio.
// The sign of ratio is irrelevant; zero or non-finite values are rejected.
func Relative(ratio float64) (Tolerance, error) {
	if err := checkEpsilon(ratio); err != nil {
		return Tolerance{}, err
	}
	return Tolerance{mode: ModeRelative, value: math.Abs(ratio)}, nil
}

// Default returns the default tolerance: Fixed(DefaultEpsilon).
func Default() Tolerance {
	return Tolerance{mode: ModeFixed, value: DefaultEpsilon}
}

// Mode returns the tolerance mode.
func (t Tolerance) Mode() Mode {
	if t.mode == "" {
		return ModeFixed
	}
	return t.mode
}

// Value returns the configured epsilon (fixed mode) or ratio (relative mode).
func (t Tolerance) Value() float64 {
	if t.mode == "" && t.value == 0 {
		return DefaultEpsilon
	}
	return t.value
}

// ResolveEpsilon computes the effective epsilon for comparing the pair (p, q).
//
// Fixed mode returns the configured epsilon unchanged. Relative mode returns
// ratio * max(|p|, |q|), recomputed fresh for every compared pair: each leaf
// of a nested comparison may have a very different magnitude, so the epsilon
// must never be hoisted out of the recursion. Note that relative mode yields
// epsilon 0 when both operands are 0; the comparator's exact-equality check
// still classifies that pair as equal.
func ResolveEpsilon(p, q float64, tol Tolerance) float64 {
	if tol.Mode() == ModeRelative {
		return tol.Value() * math.Max(math.Abs(p), math.Abs(q))
	}
	return tol.Value()
}

// checkEpsilon rejects epsilon values that make a comparison meaningless.
func checkEpsilon(epsilon float64) error {
	if epsilon == 0 {
		return fmt.Errorf("%w: epsilon is zero", ErrInvalidEpsilon)
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		return fmt.Errorf("%w: epsilon is %v", ErrInvalidEpsilon, epsilon)
	}
	return nil
}
