package delta

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Digits derives the rendering precision for a diagnostic from an epsilon.
//
// exponentDigits is the number of significant digits implied by the base-10
// exponent of |epsilon| (at least 1 even for epsilon >= 1), and decimalDigits
// is one more than that: diagnostics render operands with one extra digit
// beyond the tolerance's own precision so the near-miss stays visible.
//
// The degenerate epsilon == 0 returns (0, 0), rendering values integer-like.
func Digits(epsilon float64) (exponentDigits, decimalDigits int) {
	if epsilon == 0 {
		return 0, 0
	}
	exp := exponent(math.Abs(epsilon))
	if exp < 0 {
		exponentDigits = -exp
	} else {
		exponentDigits = 1
	}
	return exponentDigits, exponentDigits + 1
}

// FormatValue renders v in fixed-point notation with the decimal precision
// derived from epsilon.
func FormatValue(v, epsilon float64) string {
	_, decimals := Digits(epsilon)
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// FormatPath renders an index chain as "[i][j]...". Returns "" for an empty
// path (top-level scalar comparison).
func FormatPath(path []int) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, i := range path {
		fmt.Fprintf(&b, "[%d]", i)
	}
	return b.String()
}

// exponent returns the base-10 exponent of v (the exponent component of its
// scientific-notation representation). v must be positive and finite.
//
// The exponent is extracted from strconv's scientific formatting rather than
// computed via math.Log10, which rounds unreliably near exact powers of ten.
func exponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		// Unreachable: FormatFloat always emits a valid exponent for finite v.
		return 0
	}
	return exp
}
