package native

import (
	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/mathkit"
)

// Sum is the additive group of a number type: +, 0 and negation.
type Sum[T mathkit.Number, M any] struct{}

var _ algebra.Group[int, algebra.Additive[algebra.Root]] = Sum[int, algebra.Root]{}

func (Sum[T, M]) Mark() (m algebra.Additive[M]) { return m }

func (Sum[T, M]) BinOp(a, b T) T { return a + b }

func (Sum[T, M]) NullOp() T { return 0 }

func (Sum[T, M]) UnOp(a T) T { return -a }

// Product is the multiplicative monoid of a number type: * and 1.
type Product[T mathkit.Number, M any] struct{}

var _ algebra.Monoid[int, algebra.Multiplicative[algebra.Root]] = Product[int, algebra.Root]{}

func (Product[T, M]) Mark() (m algebra.Multiplicative[M]) { return m }

func (Product[T, M]) BinOp(a, b T) T { return a * b }

func (Product[T, M]) NullOp() T { return 1 }

// Reciprocal is the multiplicative group of a float type where zero has no inverse.
type Reciprocal[T mathkit.Float, M any] struct{}

var _ algebra.PartialGroup[float64, algebra.Multiplicative[algebra.Root]] = Reciprocal[float64, algebra.Root]{}

func (Reciprocal[T, M]) Mark() (m algebra.Multiplicative[M]) { return m }

func (Reciprocal[T, M]) BinOp(a, b T) T { return a * b }

func (Reciprocal[T, M]) NullOp() T { return 1 }

func (Reciprocal[T, M]) UnOp(a T) fn.Result[T] {
	if a == 0 {
		return fn.Err[T](algebra.ErrNotInvertible.F("%v has no multiplicative inverse", a))
	}
	return fn.Ok(1 / a)
}

// IntegerRing returns the ring of an integer type.
func IntegerRing[T mathkit.Int, M any]() algebra.Ring[T, M] {
	return algebra.MakeRing[T, M](Sum[T, M]{}, Product[T, M]{})
}

// FloatField returns the field of a float type.
// Rounding makes associativity and distributivity hold only approximately.
func FloatField[T mathkit.Float, M any]() algebra.Field[T, M] {
	return algebra.MakeField[T, M](Sum[T, M]{}, Reciprocal[T, M]{})
}
