package native

import (
	"math/big"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/compare"
)

// RatSum is the additive group of rational numbers.
// Every operation allocates a new *big.Rat, arguments are never modified.
type RatSum[M any] struct{}

var _ algebra.Group[*big.Rat, algebra.Additive[algebra.Root]] = RatSum[algebra.Root]{}

func (RatSum[M]) Mark() (m algebra.Additive[M]) { return m }

func (RatSum[M]) BinOp(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (RatSum[M]) NullOp() *big.Rat { return new(big.Rat) }

func (RatSum[M]) UnOp(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// RatProduct is the multiplicative group of the non-zero rational numbers.
type RatProduct[M any] struct{}

var _ algebra.PartialGroup[*big.Rat, algebra.Multiplicative[algebra.Root]] = RatProduct[algebra.Root]{}

func (RatProduct[M]) Mark() (m algebra.Multiplicative[M]) { return m }

func (RatProduct[M]) BinOp(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (RatProduct[M]) NullOp() *big.Rat { return big.NewRat(1, 1) }

func (RatProduct[M]) UnOp(a *big.Rat) fn.Result[*big.Rat] {
	if a.Sign() == 0 {
		return fn.Err[*big.Rat](algebra.ErrNotInvertible.F("%s has no multiplicative inverse", a.RatString()))
	}
	return fn.Ok(new(big.Rat).Inv(a))
}

// RatEq is value equality of rational numbers.
// A big.Rat is always normalised, so its RatString form is canonical and safe to hash.
type RatEq[M any] struct{}

var _ algebra.HashEquivalence[*big.Rat, algebra.Root] = RatEq[algebra.Root]{}

func (RatEq[M]) Mark() (m algebra.Equative[M]) { return m }

func (RatEq[M]) BinOp(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (RatEq[M]) UnOp(a *big.Rat) int { return hashString(a.RatString()) }

// RatField returns the exact field of rational numbers.
func RatField[M any]() algebra.Field[*big.Rat, M] {
	return algebra.MakeField[*big.Rat, M](RatSum[M]{}, RatProduct[M]{})
}

var ratOrdering = compare.Cmpable[*big.Rat]()

// RatMin is the meet of the rational order. Ties return the first argument.
type RatMin[M any] struct{}

func (RatMin[M]) Mark() (m algebra.Infimum[M]) { return m }

func (RatMin[M]) BinOp(a, b *big.Rat) *big.Rat {
	if ratOrdering.Less(b, a) {
		return b
	}
	return a
}

// RatMax is the join of the rational order. Ties return the first argument.
type RatMax[M any] struct{}

func (RatMax[M]) Mark() (m algebra.Supremum[M]) { return m }

func (RatMax[M]) BinOp(a, b *big.Rat) *big.Rat {
	if ratOrdering.Less(a, b) {
		return b
	}
	return a
}

// RatOrder returns the natural total order of the rational numbers.
func RatOrder[M any]() algebra.Order[*big.Rat, M] {
	return algebra.MakeOrder[*big.Rat, M](RatEq[M]{}, algebra.MakeLattice[*big.Rat, M](RatMin[M]{}, RatMax[M]{}))
}
