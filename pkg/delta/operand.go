// Package delta provides tolerance-based equality assertions for floating-point
// numbers and nested numeric arrays.
//
// Two numbers are considered equal when their absolute difference is strictly
// less than an epsilon, which is either supplied explicitly per assertion or
// derived from a Tolerance (fixed or relative). Nested sequences are compared
// element by element; the first mismatching element wins and its index path is
// reported in the diagnostic.
package delta

import (
	"fmt"
)

// Operand is a value under comparison: either a single number or an ordered
// sequence of operands. Operands form a tree; both sides of a comparison must
// share the same shape at every level.
//
// The zero value is the number 0.
type Operand struct {
	seq   []Operand
	num   float64
	isSeq bool
}

// N returns a number operand.
func N(v float64) Operand {
	return Operand{num: v}
}

// Seq returns a sequence operand with the given elements.
func Seq(elems ...Operand) Operand {
	return Operand{seq: elems, isSeq: true}
}

// Numbers returns a sequence operand built from a slice of numbers.
func Numbers(vs ...float64) Operand {
	elems := make([]Operand, len(vs))
	for i, v := range vs {
		elems[i] = N(v)
	}
	return Seq(elems...)
}

// Matrix returns a two-level sequence operand built from rows of numbers.
func Matrix(rows ...[]float64) Operand {
	elems := make([]Operand, len(rows))
	for i, row := range rows {
		elems[i] = Numbers(row...)
	}
	return Seq(elems...)
}

// IsSequence reports whether the operand is a sequence.
func (o Operand) IsSequence() bool {
	return o.isSeq
}

// Number returns the numeric value. Valid only when IsSequence is false.
func (o Operand) Number() float64 {
	return o.num
}

// Len returns the number of elements in a sequence operand, or 0 for a number.
func (o Operand) Len() int {
	return len(o.seq)
}

// At returns the i-th element of a sequence operand.
func (o Operand) At(i int) Operand {
	return o.seq[i]
}

// FromValue converts a decoded JSON/YAML value into an Operand.
// Supported inputs are numbers (float64, int, int64) and arrays thereof,
// nested to any depth. Anything else is an error.
func FromValue(v interface{}) (Operand, error) {
	switch val := v.(type) {
	case float64:
		return N(val), nil
	case int:
		return N(float64(val)), nil
	case int64:
		return N(float64(val)), nil
	case []interface{}:
		elems := make([]Operand, len(val))
		for i, item := range val {
			elem, err := FromValue(item)
			if err != nil {
				return Operand{}, fmt.Errorf("[%d]: %w", i, err)
			}
			elems[i] = elem
		}
		return Seq(elems...), nil
	default:
		return Operand{}, fmt.Errorf("unsupported value type %T (expected number or array)", v)
	}
}
