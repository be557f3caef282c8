package algebra

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Semigroup is a type with an associative combine operation.
type Semigroup[T, M any] interface {
	BinOp[T, T, T, M]
}

// Monoid is a Semigroup with an identity element.
// combine(x, identity) == x == combine(identity, x)
type Monoid[T, M any] interface {
	Semigroup[T, M]
	NullOp[T, M]
}

// Group is a Monoid where every element has an inverse.
// combine(x, inverse(x)) == identity
type Group[T, M any] interface {
	Monoid[T, M]
	UnOp[T, T, M]
}

// PartialGroup is a Monoid where the inverse may not exist for every element.
// The inverse slot reports the non-invertible case as an error result,
// typically wrapping ErrNotInvertible.
type PartialGroup[T, M any] interface {
	Monoid[T, M]
	UnOp[T, fn.Result[T], M]
}

// SemigroupOf makes a Semigroup instance from a combine function.
func SemigroupOf[T, M any](combine func(a, b T) T) Semigroup[T, M] {
	return BinOpFunc[T, T, T, M](combine)
}

// MonoidOf makes a Monoid instance from a combine function and its identity.
func MonoidOf[T, M any](combine func(a, b T) T, identity T) Monoid[T, M] {
	return monoid[T, M]{
		BinOpFunc:  combine,
		NullOpFunc: Const[T, M](identity),
	}
}

// GroupOf makes a Group instance.
func GroupOf[T, M any](combine func(a, b T) T, identity T, inverse func(T) T) Group[T, M] {
	return group[T, M]{
		BinOpFunc:  combine,
		NullOpFunc: Const[T, M](identity),
		UnOpFunc:   inverse,
	}
}

// PartialGroupOf makes a PartialGroup instance where inverse may fail.
func PartialGroupOf[T, M any](combine func(a, b T) T, identity T, inverse func(T) (T, error)) PartialGroup[T, M] {
	return partialGroup[T, M]{
		BinOpFunc:  combine,
		NullOpFunc: Const[T, M](identity),
		UnOpFunc: func(v T) fn.Result[T] {
			inv, err := inverse(v)
			if err != nil {
				return fn.Err[T](err)
			}
			return fn.Ok(inv)
		},
	}
}

type monoid[T, M any] struct {
	BinOpFunc[T, T, T, M]
	NullOpFunc[T, M]
}

func (monoid[T, M]) Mark() (m M) { return m }

type group[T, M any] struct {
	BinOpFunc[T, T, T, M]
	NullOpFunc[T, M]
	UnOpFunc[T, T, M]
}

func (group[T, M]) Mark() (m M) { return m }

type partialGroup[T, M any] struct {
	BinOpFunc[T, T, T, M]
	NullOpFunc[T, M]
	UnOpFunc[T, fn.Result[T], M]
}

func (partialGroup[T, M]) Mark() (m M) { return m }

// Lattice is a pair of semigroups over the same T:
// meet tagged Infimum[M] and join tagged Supremum[M].
type Lattice[T, M any] struct {
	Infimum  Semigroup[T, Infimum[M]]
	Supremum Semigroup[T, Supremum[M]]
}

func MakeLattice[T, M any](meet Semigroup[T, Infimum[M]], join Semigroup[T, Supremum[M]]) Lattice[T, M] {
	return Lattice[T, M]{Infimum: meet, Supremum: join}
}

func (l Lattice[T, M]) Meet(a, b T) T { return l.Infimum.BinOp(a, b) }

func (l Lattice[T, M]) Join(a, b T) T { return l.Supremum.BinOp(a, b) }

// BoundedLattice is a Lattice where both meet and join have an identity.
// The identity of meet is the top element, the identity of join is the bottom element.
type BoundedLattice[T, M any] struct {
	Infimum  Monoid[T, Infimum[M]]
	Supremum Monoid[T, Supremum[M]]
}

func MakeBoundedLattice[T, M any](meet Monoid[T, Infimum[M]], join Monoid[T, Supremum[M]]) BoundedLattice[T, M] {
	return BoundedLattice[T, M]{Infimum: meet, Supremum: join}
}

func (l BoundedLattice[T, M]) Meet(a, b T) T { return l.Infimum.BinOp(a, b) }

func (l BoundedLattice[T, M]) Join(a, b T) T { return l.Supremum.BinOp(a, b) }

func (l BoundedLattice[T, M]) Top() T { return l.Infimum.NullOp() }

func (l BoundedLattice[T, M]) Bottom() T { return l.Supremum.NullOp() }

func (l BoundedLattice[T, M]) Lattice() Lattice[T, M] {
	return Lattice[T, M]{Infimum: l.Infimum, Supremum: l.Supremum}
}

// Ring is an additive Group and a multiplicative Monoid over the same T,
// where multiplication distributes over addition.
//
// This is where the same Semigroup shape appears twice for one T,
// and only the marks tell them apart.
type Ring[T, M any] struct {
	Additive       Group[T, Additive[M]]
	Multiplicative Monoid[T, Multiplicative[M]]
}

func MakeRing[T, M any](add Group[T, Additive[M]], mul Monoid[T, Multiplicative[M]]) Ring[T, M] {
	return Ring[T, M]{Additive: add, Multiplicative: mul}
}

func (r Ring[T, M]) Add(a, b T) T { return r.Additive.BinOp(a, b) }

func (r Ring[T, M]) Neg(a T) T { return r.Additive.UnOp(a) }

func (r Ring[T, M]) Sub(a, b T) T { return r.Add(a, r.Neg(b)) }

func (r Ring[T, M]) Zero() T { return r.Additive.NullOp() }

func (r Ring[T, M]) Mul(a, b T) T { return r.Multiplicative.BinOp(a, b) }

func (r Ring[T, M]) One() T { return r.Multiplicative.NullOp() }

// Field is a Ring whose multiplicative part also has inverses.
// The multiplicative inverse of a non-invertible element (the additive identity) is an error result.
type Field[T, M any] struct {
	Additive       Group[T, Additive[M]]
	Multiplicative PartialGroup[T, Multiplicative[M]]
}

func MakeField[T, M any](add Group[T, Additive[M]], mul PartialGroup[T, Multiplicative[M]]) Field[T, M] {
	return Field[T, M]{Additive: add, Multiplicative: mul}
}

// Ring returns the Ring view of the Field.
func (f Field[T, M]) Ring() Ring[T, M] {
	return Ring[T, M]{Additive: f.Additive, Multiplicative: f.Multiplicative}
}

func (f Field[T, M]) Add(a, b T) T { return f.Additive.BinOp(a, b) }

func (f Field[T, M]) Neg(a T) T { return f.Additive.UnOp(a) }

func (f Field[T, M]) Sub(a, b T) T { return f.Add(a, f.Neg(b)) }

func (f Field[T, M]) Zero() T { return f.Additive.NullOp() }

func (f Field[T, M]) Mul(a, b T) T { return f.Multiplicative.BinOp(a, b) }

func (f Field[T, M]) One() T { return f.Multiplicative.NullOp() }

// Inv returns the multiplicative inverse of a.
func (f Field[T, M]) Inv(a T) (T, error) {
	return f.Multiplicative.UnOp(a).Unpack()
}

// Div multiplies a with the multiplicative inverse of b.
func (f Field[T, M]) Div(a, b T) (T, error) {
	inv, err := f.Inv(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.Mul(a, inv), nil
}
