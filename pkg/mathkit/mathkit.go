// Package mathkit holds integer helpers that generic code needs
// but the language only offers per concrete type.
package mathkit

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

type (
	Int    constraints.Integer
	Signed constraints.Signed
	Float  constraints.Float
	Number interface{ Int | Float }
)

// IsSigned reports whether INT can hold negative values.
func IsSigned[INT Int]() bool {
	var zero INT
	return zero-1 < zero
}

// MaxOf returns the largest value INT can represent.
func MaxOf[INT Int]() INT {
	var zero INT
	if !IsSigned[INT]() {
		return ^zero
	}
	// all bits set except the sign bit
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	return INT(uint64(1)<<(typeSizeInBits-1) - 1)
}

// MinOf returns the smallest value INT can represent.
func MinOf[INT Int]() INT {
	var zero INT
	if !IsSigned[INT]() {
		return zero
	}
	return -MaxOf[INT]() - 1
}

// CanAddOverflow reports whether a + b leaves the range of INT.
func CanAddOverflow[INT Int](a, b INT) bool {
	switch {
	case 0 < b:
		return MaxOf[INT]()-b < a
	case b < 0:
		return a < MinOf[INT]()-b
	default:
		return false
	}
}

// CanSubOverflow reports whether a - b leaves the range of INT.
func CanSubOverflow[INT Int](a, b INT) bool {
	switch {
	case 0 < b:
		return a < MinOf[INT]()+b
	case b < 0:
		return MaxOf[INT]()+b < a
	default:
		return false
	}
}
