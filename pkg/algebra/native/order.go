package native

import (
	"cmp"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/mathkit"
)

// Eq is the built-in == as an Equivalence, with a hash that respects it.
type Eq[T cmp.Ordered, M any] struct{}

var _ algebra.HashEquivalence[string, algebra.Root] = Eq[string, algebra.Root]{}

func (Eq[T, M]) Mark() (m algebra.Equative[M]) { return m }

func (Eq[T, M]) BinOp(a, b T) bool { return a == b }

func (Eq[T, M]) UnOp(v T) int { return hashOrdered(v) }

// Min is the meet of the natural order.
type Min[T cmp.Ordered, M any] struct{}

func (Min[T, M]) Mark() (m algebra.Infimum[M]) { return m }

func (Min[T, M]) BinOp(a, b T) T { return min(a, b) }

// Max is the join of the natural order.
type Max[T cmp.Ordered, M any] struct{}

func (Max[T, M]) Mark() (m algebra.Supremum[M]) { return m }

func (Max[T, M]) BinOp(a, b T) T { return max(a, b) }

// OrderOf returns the natural total order of T as an Order.
func OrderOf[T cmp.Ordered, M any]() algebra.Order[T, M] {
	return algebra.MakeOrder[T, M](Eq[T, M]{}, algebra.MakeLattice[T, M](Min[T, M]{}, Max[T, M]{}))
}

// BoundedMin is Min with the largest value of INT as its identity.
type BoundedMin[INT mathkit.Int, M any] struct{ Min[INT, M] }

func (BoundedMin[INT, M]) NullOp() INT { return mathkit.MaxOf[INT]() }

// BoundedMax is Max with the smallest value of INT as its identity.
type BoundedMax[INT mathkit.Int, M any] struct{ Max[INT, M] }

func (BoundedMax[INT, M]) NullOp() INT { return mathkit.MinOf[INT]() }

// BoundedLatticeOf returns the integers of INT between MinOf and MaxOf as a bounded lattice.
func BoundedLatticeOf[INT mathkit.Int, M any]() algebra.BoundedLattice[INT, M] {
	return algebra.MakeBoundedLattice[INT, M](BoundedMin[INT, M]{}, BoundedMax[INT, M]{})
}
