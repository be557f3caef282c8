// Package laws checks the algebraic laws of an instance on concrete sample values.
//
// A law function returns nil when the law holds for the given samples,
// and an error wrapping ErrLawViolation when it does not.
// The functions only check, they never sample; pair them with a random source
// (see algebracontract) to get property based tests.
package laws

import (
	"errors"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrLawViolation errorkit.Error = "ErrLawViolation"

// Equal tells whether two values are the same for the purpose of the law.
type Equal[T any] func(a, b T) bool

func violation(law string, format string, args ...any) error {
	return ErrLawViolation.Wrap(errorkit.Error(law).F(format, args...))
}

// Associativity: combine(combine(x, y), z) == combine(x, combine(y, z))
func Associativity[T, M any](sg algebra.Semigroup[T, M], eq Equal[T], x, y, z T) error {
	l := sg.BinOp(sg.BinOp(x, y), z)
	r := sg.BinOp(x, sg.BinOp(y, z))
	if !eq(l, r) {
		return violation("associativity", "%s: (%v • %v) • %v = %v, but %v • (%v • %v) = %v",
			algebra.MarkName[M](), x, y, z, l, x, y, z, r)
	}
	return nil
}

// Identity: combine(x, identity) == x == combine(identity, x)
func Identity[T, M any](m algebra.Monoid[T, M], eq Equal[T], x T) error {
	id := m.NullOp()
	if l := m.BinOp(id, x); !eq(l, x) {
		return violation("left identity", "%s: %v • %v = %v", algebra.MarkName[M](), id, x, l)
	}
	if r := m.BinOp(x, id); !eq(r, x) {
		return violation("right identity", "%s: %v • %v = %v", algebra.MarkName[M](), x, id, r)
	}
	return nil
}

// Inverse: combine(x, inverse(x)) == identity == combine(inverse(x), x)
func Inverse[T, M any](g algebra.Group[T, M], eq Equal[T], x T) error {
	var (
		id  = g.NullOp()
		inv = g.UnOp(x)
	)
	if l := g.BinOp(x, inv); !eq(l, id) {
		return violation("inverse", "%s: %v • %v⁻¹ = %v, expected %v", algebra.MarkName[M](), x, x, l, id)
	}
	if r := g.BinOp(inv, x); !eq(r, id) {
		return violation("inverse", "%s: %v⁻¹ • %v = %v, expected %v", algebra.MarkName[M](), x, x, r, id)
	}
	return nil
}

// Distributivity: mul(x, add(y, z)) == add(mul(x, y), mul(x, z)), and the same from the right.
func Distributivity[T, M any](r algebra.Ring[T, M], eq Equal[T], x, y, z T) error {
	if l, rr := r.Mul(x, r.Add(y, z)), r.Add(r.Mul(x, y), r.Mul(x, z)); !eq(l, rr) {
		return violation("left distributivity", "%v * (%v + %v) = %v, but %v * %v + %v * %v = %v",
			x, y, z, l, x, y, x, z, rr)
	}
	if l, rr := r.Mul(r.Add(y, z), x), r.Add(r.Mul(y, x), r.Mul(z, x)); !eq(l, rr) {
		return violation("right distributivity", "(%v + %v) * %v = %v, but %v * %v + %v * %v = %v",
			y, z, x, l, y, x, z, x, rr)
	}
	return nil
}

// Ring checks every ring law on the samples:
// the additive part is a Group, the multiplicative part is a Monoid,
// and multiplication distributes over addition.
func Ring[T, M any](r algebra.Ring[T, M], eq Equal[T], x, y, z T) error {
	return errors.Join(
		Associativity[T, algebra.Additive[M]](r.Additive, eq, x, y, z),
		Identity[T, algebra.Additive[M]](r.Additive, eq, x),
		Inverse[T, algebra.Additive[M]](r.Additive, eq, x),
		Commutativity[T, algebra.Additive[M]](r.Additive, eq, x, y),
		Associativity[T, algebra.Multiplicative[M]](r.Multiplicative, eq, x, y, z),
		Identity[T, algebra.Multiplicative[M]](r.Multiplicative, eq, x),
		Distributivity(r, eq, x, y, z),
	)
}

// Reciprocal: for every x other than the additive identity,
// mul(x, inverse(x)) == one, and the additive identity has no inverse.
func Reciprocal[T, M any](f algebra.Field[T, M], eq Equal[T], x T) error {
	inv, err := f.Inv(x)
	if eq(x, f.Zero()) {
		if err == nil {
			return violation("reciprocal", "the additive identity %v has an inverse: %v", x, inv)
		}
		return nil
	}
	if err != nil {
		return violation("reciprocal", "%v is expected to be invertible: %v", x, err)
	}
	if got := f.Mul(x, inv); !eq(got, f.One()) {
		return violation("reciprocal", "%v * %v⁻¹ = %v, expected %v", x, x, got, f.One())
	}
	return nil
}

// Field checks the ring laws and the reciprocal law.
func Field[T, M any](f algebra.Field[T, M], eq Equal[T], x, y, z T) error {
	return errors.Join(
		Ring(f.Ring(), eq, x, y, z),
		Commutativity[T, algebra.Multiplicative[M]](f.Multiplicative, eq, x, y),
		Reciprocal(f, eq, x),
	)
}

// Commutativity: combine(x, y) == combine(y, x)
func Commutativity[T, M any](sg algebra.Semigroup[T, M], eq Equal[T], x, y T) error {
	if l, r := sg.BinOp(x, y), sg.BinOp(y, x); !eq(l, r) {
		return violation("commutativity", "%s: %v • %v = %v, but %v • %v = %v",
			algebra.MarkName[M](), x, y, l, y, x, r)
	}
	return nil
}

// Idempotence: combine(x, x) == x
func Idempotence[T, M any](sg algebra.Semigroup[T, M], eq Equal[T], x T) error {
	if got := sg.BinOp(x, x); !eq(got, x) {
		return violation("idempotence", "%s: %v • %v = %v", algebra.MarkName[M](), x, x, got)
	}
	return nil
}

// Absorption: meet(x, join(x, y)) == x == join(x, meet(x, y))
func Absorption[T, M any](l algebra.Lattice[T, M], eq Equal[T], x, y T) error {
	if got := l.Meet(x, l.Join(x, y)); !eq(got, x) {
		return violation("absorption", "%v ∧ (%v ∨ %v) = %v", x, x, y, got)
	}
	if got := l.Join(x, l.Meet(x, y)); !eq(got, x) {
		return violation("absorption", "%v ∨ (%v ∧ %v) = %v", x, x, y, got)
	}
	return nil
}

// Lattice checks that meet and join are commutative, associative, idempotent semigroups
// connected by absorption.
func Lattice[T, M any](l algebra.Lattice[T, M], eq Equal[T], x, y, z T) error {
	return errors.Join(
		Associativity[T, algebra.Infimum[M]](l.Infimum, eq, x, y, z),
		Associativity[T, algebra.Supremum[M]](l.Supremum, eq, x, y, z),
		Commutativity[T, algebra.Infimum[M]](l.Infimum, eq, x, y),
		Commutativity[T, algebra.Supremum[M]](l.Supremum, eq, x, y),
		Idempotence[T, algebra.Infimum[M]](l.Infimum, eq, x),
		Idempotence[T, algebra.Supremum[M]](l.Supremum, eq, x),
		Absorption(l, eq, x, y),
	)
}

// BoundedLattice checks the lattice laws and that top and bottom are the identities of meet and join.
func BoundedLattice[T, M any](l algebra.BoundedLattice[T, M], eq Equal[T], x, y, z T) error {
	return errors.Join(
		Lattice(l.Lattice(), eq, x, y, z),
		Identity[T, algebra.Infimum[M]](l.Infimum, eq, x),
		Identity[T, algebra.Supremum[M]](l.Supremum, eq, x),
	)
}
