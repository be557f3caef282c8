package lawcheck

import (
	"math"
	"math/big"
	"strings"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/algebra/laws"
	"go.llib.dev/algebrakit/pkg/algebra/native"
	"go.llib.dev/algebrakit/pkg/mathkit"
	"go.llib.dev/frameless/pkg/errorkit"
)

// Catalog lists the law checks of the native instances.
func Catalog() []Check {
	return []Check{
		{Name: "ring/int", Law: integerRing[int]},
		{Name: "ring/int64", Law: integerRing[int64]},
		{Name: "ring/uint8", Law: integerRing[uint8]},
		{Name: "field/rat", Law: ratField},
		{Name: "field/float64", Law: floatField},
		{Name: "field/gf2", Law: gf2},
		{Name: "lattice/bool", Law: boolLattice},
		{Name: "lattice/int8", Law: boundedLattice[int8]},
		{Name: "lattice/uint16", Law: boundedLattice[uint16]},
		{Name: "order/int", Law: func(s *Sample) error {
			return laws.Order(native.OrderOf[int, algebra.Root](), s.Random.Int(), s.Random.Int(), s.Random.Int())
		}},
		{Name: "order/float64", Law: func(s *Sample) error {
			return laws.Order(native.OrderOf[float64, algebra.Root](), s.Random.Float64(), s.Random.Float64(), s.Random.Float64())
		}},
		{Name: "order/string", Law: func(s *Sample) error {
			return laws.Order(native.OrderOf[string, algebra.Root](), s.Word(), s.Word(), s.Word())
		}},
		{Name: "order/rat", Law: func(s *Sample) error {
			return laws.Order(native.RatOrder[algebra.Root](), rat(s), rat(s), rat(s))
		}},
		{Name: "equivalence/rat", Law: ratEquivalence},
		{Name: "equivalence/casefold", Law: caseFold},
		{Name: "monoid/concat", Law: concat},
	}
}

func same[T comparable](a, b T) bool { return a == b }

func anyOf[T any](r *Sample, vs ...T) T {
	return vs[r.Random.IntBetween(0, len(vs)-1)]
}

func integer[T mathkit.Int](s *Sample) T {
	lo, hi := int64(mathkit.MinOf[T]()), int64(mathkit.MaxOf[T]())
	if hi < 0 || hi > math.MaxInt32 {
		v := T(s.Random.Int())
		if mathkit.IsSigned[T]() && s.Random.Bool() {
			v = -v - 1 // reaches MinOf without overflowing
		}
		return v
	}
	return T(s.Random.IntBetween(int(lo), int(hi)))
}

func integerRing[T mathkit.Int](s *Sample) error {
	return laws.Ring(native.IntegerRing[T, algebra.Root](), same[T], integer[T](s), integer[T](s), integer[T](s))
}

func boundedLattice[T mathkit.Int](s *Sample) error {
	l := native.BoundedLatticeOf[T, algebra.Root]()
	// the bounds are where the identities are most likely to break
	x := anyOf(s, mathkit.MinOf[T](), mathkit.MaxOf[T](), integer[T](s))
	return laws.BoundedLattice(l, same[T], x, integer[T](s), integer[T](s))
}

func rat(s *Sample) *big.Rat {
	return big.NewRat(int64(s.Random.IntBetween(-1000, 1000)), int64(s.Random.IntBetween(1, 1000)))
}

func ratField(s *Sample) error {
	return laws.Field(native.RatField[algebra.Root](), native.RatEq[algebra.Root]{}.BinOp, rat(s), rat(s), rat(s))
}

func ratEquivalence(s *Sample) error {
	var (
		eq algebra.HashEquivalence[*big.Rat, algebra.Root] = native.RatEq[algebra.Root]{}
		x                                                 = rat(s)
		k                                                 = big.NewInt(int64(s.Random.IntBetween(1, 64)))
	)
	// same value, different numerator and denominator
	y := new(big.Rat).SetFrac(new(big.Int).Mul(x.Num(), k), new(big.Int).Mul(x.Denom(), k))
	return errorkit.Merge(
		laws.Equivalence[*big.Rat, algebra.Root](eq, x, y, rat(s)),
		laws.HashConsistency(eq, x, y),
	)
}

// dyadic draws values that float64 represents exactly, so only the reciprocal can round.
func dyadic(s *Sample) float64 {
	return float64(s.Random.IntBetween(-512, 512)) / 8
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func floatField(s *Sample) error {
	return laws.Field(native.FloatField[float64, algebra.Root](), approx, dyadic(s), dyadic(s), dyadic(s))
}

func gf2(s *Sample) error {
	return laws.Field(native.GF2[algebra.Root](), same[bool], s.Random.Bool(), s.Random.Bool(), s.Random.Bool())
}

func boolLattice(s *Sample) error {
	return laws.BoundedLattice(native.BoolLattice[algebra.Root](), same[bool], s.Random.Bool(), s.Random.Bool(), s.Random.Bool())
}

func caseFold(s *Sample) error {
	var (
		eq algebra.HashEquivalence[string, native.CaseFold] = native.FoldEq[native.CaseFold]{}
		x                                                   = s.Word()
		y                                                   = anyOf(s, strings.ToUpper, strings.ToLower, strings.Clone)(x)
	)
	return errorkit.Merge(
		laws.Equivalence[string, native.CaseFold](eq, x, y, s.Word()),
		laws.HashConsistency(eq, x, y),
		laws.HashConsistency(eq, y, s.Word()),
	)
}

func concat(s *Sample) error {
	var (
		m       algebra.Monoid[string, algebra.Root] = native.Concat[algebra.Root]{}
		x, y, z                                      = s.Word(), s.Word(), s.Word()
	)
	return errorkit.Merge(
		laws.Associativity(m, same[string], x, y, z),
		laws.Identity(m, same[string], x),
	)
}
