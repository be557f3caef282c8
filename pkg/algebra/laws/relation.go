package laws

import (
	"errors"

	"go.llib.dev/algebrakit/pkg/algebra"
)

func Reflexivity[T, M any](eq algebra.Equivalence[T, M], x T) error {
	if !eq.BinOp(x, x) {
		return violation("reflexivity", "%s: %v is not equal to itself", algebra.MarkName[M](), x)
	}
	return nil
}

func Symmetry[T, M any](eq algebra.Equivalence[T, M], x, y T) error {
	if eq.BinOp(x, y) != eq.BinOp(y, x) {
		return violation("symmetry", "%s: %v = %v is %t, but %v = %v is %t",
			algebra.MarkName[M](), x, y, eq.BinOp(x, y), y, x, eq.BinOp(y, x))
	}
	return nil
}

func Transitivity[T, M any](eq algebra.Equivalence[T, M], x, y, z T) error {
	if eq.BinOp(x, y) && eq.BinOp(y, z) && !eq.BinOp(x, z) {
		return violation("transitivity", "%s: %v = %v and %v = %v, but %v ≠ %v",
			algebra.MarkName[M](), x, y, y, z, x, z)
	}
	return nil
}

// Equivalence checks reflexivity, symmetry and transitivity.
func Equivalence[T, M any](eq algebra.Equivalence[T, M], x, y, z T) error {
	return errors.Join(
		Reflexivity(eq, x),
		Symmetry(eq, x, y),
		Transitivity(eq, x, y, z),
	)
}

// HashConsistency: equal(x, y) ⇒ hash(x) == hash(y)
func HashConsistency[T, M any](h algebra.HashEquivalence[T, M], x, y T) error {
	if h.BinOp(x, y) && h.UnOp(x) != h.UnOp(y) {
		return violation("hash consistency", "%s: %v = %v, but their hashes differ: %d, %d",
			algebra.MarkName[M](), x, y, h.UnOp(x), h.UnOp(y))
	}
	return nil
}

// Totality: x ≤ y or y ≤ x
func Totality[T, M any](o algebra.Order[T, M], x, y T) error {
	if !o.LessOrEqual(x, y) && !o.LessOrEqual(y, x) {
		return violation("totality", "neither %v ≤ %v nor %v ≤ %v", x, y, y, x)
	}
	return nil
}

// Antisymmetry: x ≤ y and y ≤ x ⇒ x ≡ y
func Antisymmetry[T, M any](o algebra.Order[T, M], x, y T) error {
	if o.LessOrEqual(x, y) && o.LessOrEqual(y, x) && !o.Equal(x, y) {
		return violation("antisymmetry", "%v ≤ %v and %v ≤ %v, but they are not equal", x, y, y, x)
	}
	return nil
}

// OrderTransitivity: x ≤ y and y ≤ z ⇒ x ≤ z
func OrderTransitivity[T, M any](o algebra.Order[T, M], x, y, z T) error {
	if o.LessOrEqual(x, y) && o.LessOrEqual(y, z) && !o.LessOrEqual(x, z) {
		return violation("order transitivity", "%v ≤ %v and %v ≤ %v, but not %v ≤ %v", x, y, y, z, x, z)
	}
	return nil
}

// MinMax: meet and join agree with the min and max of the order.
func MinMax[T, M any](o algebra.Order[T, M], x, y T) error {
	lo, hi := x, y
	if o.Less(y, x) {
		lo, hi = y, x
	}
	if got := o.Meet(x, y); !o.Equal(got, lo) {
		return violation("meet is min", "%v ∧ %v = %v, expected %v", x, y, got, lo)
	}
	if got := o.Join(x, y); !o.Equal(got, hi) {
		return violation("join is max", "%v ∨ %v = %v, expected %v", x, y, got, hi)
	}
	return nil
}

// Order checks that the Order is a total order whose meet and join are min and max,
// and that its equivalence is an equivalence.
func Order[T, M any](o algebra.Order[T, M], x, y, z T) error {
	return errors.Join(
		Equivalence(o.Equative, x, y, z),
		Totality(o, x, y),
		Antisymmetry(o, x, y),
		OrderTransitivity(o, x, y, z),
		MinMax(o, x, y),
		Lattice(o.Lattice, o.Equal, x, y, z),
	)
}
