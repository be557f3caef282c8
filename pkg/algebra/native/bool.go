package native

import (
	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/algebra"
)

// Xor is addition in GF(2): exclusive or, with false as zero.
// Every element is its own inverse.
type Xor[M any] struct{}

func (Xor[M]) Mark() (m algebra.Additive[M]) { return m }

func (Xor[M]) BinOp(a, b bool) bool { return a != b }

func (Xor[M]) NullOp() bool { return false }

func (Xor[M]) UnOp(a bool) bool { return a }

// Conj is multiplication in GF(2): logical and, with true as one.
type Conj[M any] struct{}

func (Conj[M]) Mark() (m algebra.Multiplicative[M]) { return m }

func (Conj[M]) BinOp(a, b bool) bool { return a && b }

func (Conj[M]) NullOp() bool { return true }

func (Conj[M]) UnOp(a bool) fn.Result[bool] {
	if !a {
		return fn.Err[bool](algebra.ErrNotInvertible.F("false has no multiplicative inverse in GF(2)"))
	}
	return fn.Ok(true)
}

// GF2 returns the two element field of booleans.
func GF2[M any]() algebra.Field[bool, M] {
	return algebra.MakeField[bool, M](Xor[M]{}, Conj[M]{})
}

// All is the meet of the boolean lattice, its identity (top) is true.
type All[M any] struct{}

func (All[M]) Mark() (m algebra.Infimum[M]) { return m }

func (All[M]) BinOp(a, b bool) bool { return a && b }

func (All[M]) NullOp() bool { return true }

// Any is the join of the boolean lattice, its identity (bottom) is false.
type Any[M any] struct{}

func (Any[M]) Mark() (m algebra.Supremum[M]) { return m }

func (Any[M]) BinOp(a, b bool) bool { return a || b }

func (Any[M]) NullOp() bool { return false }

// BoolLattice returns the bounded lattice false < true.
func BoolLattice[M any]() algebra.BoundedLattice[bool, M] {
	return algebra.MakeBoundedLattice[bool, M](All[M]{}, Any[M]{})
}
