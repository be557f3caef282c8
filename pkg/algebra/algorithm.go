package algebra

import (
	"iter"
	"math"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/frameless/pkg/iterkit"
)

// Fold combines every value of the sequence, starting from the identity.
// An empty sequence folds into the identity.
func Fold[T, M any](m Monoid[T, M], vs iter.Seq[T]) T {
	return iterkit.Reduce(vs, m.NullOp(), m.BinOp)
}

// Reduce combines every value of the sequence.
// Without an identity, an empty sequence has no result.
func Reduce[T, M any](s Semigroup[T, M], vs iter.Seq[T]) fn.Option[T] {
	var (
		acc T
		ok  bool
	)
	for v := range vs {
		if !ok {
			acc, ok = v, true
			continue
		}
		acc = s.BinOp(acc, v)
	}
	if !ok {
		return fn.None[T]()
	}
	return fn.Some(acc)
}

// Power combines v with itself n times using exponentiation by squaring.
// Power(m, v, 0) is the identity.
func Power[T, M any](m Monoid[T, M], v T, n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, ErrNegativeExponent.F("exponent: %d", n)
	}
	return power(m, v, n), nil
}

// power expects 0 <= n.
func power[T, M any](m Monoid[T, M], v T, n int) T {
	var acc = m.NullOp()
	for base := v; 0 < n; n >>= 1 {
		if n&1 == 1 {
			acc = m.BinOp(acc, base)
		}
		if 1 < n {
			base = m.BinOp(base, base)
		}
	}
	return acc
}

// GroupPower is Power for groups, where a negative exponent uses the inverse.
func GroupPower[T, M any](g Group[T, M], v T, n int) T {
	if 0 <= n {
		return power[T, M](g, v, n)
	}
	inv := g.UnOp(v)
	if n == math.MinInt { // -n does not fit into an int
		return g.BinOp(power[T, M](g, inv, math.MaxInt), inv)
	}
	return power[T, M](g, inv, -n)
}

// Sum adds up the values using the additive part of the Ring.
func Sum[T, M any](r Ring[T, M], vs iter.Seq[T]) T {
	return Fold[T, Additive[M]](r.Additive, vs)
}

// Product multiplies the values using the multiplicative part of the Ring.
func Product[T, M any](r Ring[T, M], vs iter.Seq[T]) T {
	return Fold[T, Multiplicative[M]](r.Multiplicative, vs)
}

func Minimum[T, M any](o Order[T, M], vs iter.Seq[T]) fn.Option[T] {
	return Reduce[T, Infimum[M]](o.Infimum, vs)
}

func Maximum[T, M any](o Order[T, M], vs iter.Seq[T]) fn.Option[T] {
	return Reduce[T, Supremum[M]](o.Supremum, vs)
}
