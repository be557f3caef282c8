package native_test

import (
	"math"
	"math/big"
	"testing"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/algebra/algebracontract"
	"go.llib.dev/algebrakit/pkg/algebra/native"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func makeRat(tb testing.TB) *big.Rat {
	t := testcase.ToT(&tb)
	return big.NewRat(int64(t.Random.IntBetween(-1000, 1000)), int64(t.Random.IntBetween(1, 1000)))
}

func ratEqual(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a), math.Abs(b))
}

func TestIntegerRing(t *testing.T) {
	algebracontract.Ring(native.IntegerRing[int, algebra.Root]()).Test(t)
	algebracontract.Ring(native.IntegerRing[uint8, algebra.Root]()).Test(t)
	algebracontract.Ring(native.IntegerRing[int32, algebra.Root](),
		algebracontract.MakeElem(func(tb testing.TB) int32 {
			return int32(testcase.ToT(&tb).Random.IntBetween(-100, 100))
		})).Test(t)
}

func TestRatField(t *testing.T) {
	algebracontract.Field(native.RatField[algebra.Root](),
		algebracontract.MakeElem(makeRat),
		algebracontract.Equal(ratEqual),
	).Test(t)

	algebracontract.HashEquivalence[*big.Rat, algebra.Root](native.RatEq[algebra.Root]{},
		algebracontract.MakeElem(func(tb testing.TB) *big.Rat {
			t := testcase.ToT(&tb)
			n := int64(t.Random.IntBetween(-3, 3))
			// equal values with different representations
			k := int64(t.Random.IntBetween(1, 4))
			return big.NewRat(n*k, 2*k)
		}),
	).Test(t)
}

func TestRatField_operationsDoNotModifyTheirArguments(t *testing.T) {
	f := native.RatField[algebra.Root]()
	x, y := big.NewRat(1, 2), big.NewRat(2, 3)

	_ = f.Add(x, y)
	_ = f.Mul(x, y)
	_ = f.Neg(x)
	_, _ = f.Inv(y)

	assert.Equal(t, "1/2", x.RatString())
	assert.Equal(t, "2/3", y.RatString())
}

func TestFloatField(t *testing.T) {
	algebracontract.Field(native.FloatField[float64, algebra.Root](),
		algebracontract.MakeElem(func(tb testing.TB) float64 {
			return float64(testcase.ToT(&tb).Random.IntBetween(-1000, 1000)) / 8
		}),
		algebracontract.Equal(approxEqual),
	).Test(t)
}

func TestGF2(t *testing.T) {
	algebracontract.Field(native.GF2[algebra.Root]()).Test(t)

	f := native.GF2[algebra.Root]()
	assert.Equal(t, false, f.Add(true, true))
	assert.Equal(t, true, f.Mul(true, true))
	_, err := f.Inv(false)
	assert.ErrorIs(t, err, algebra.ErrNotInvertible)
}

func TestBoolLattice(t *testing.T) {
	algebracontract.BoundedLattice(native.BoolLattice[algebra.Root]()).Test(t)

	l := native.BoolLattice[algebra.Root]()
	assert.Equal(t, true, l.Top())
	assert.Equal(t, false, l.Bottom())
}

func TestBoundedLatticeOf(t *testing.T) {
	algebracontract.BoundedLattice(native.BoundedLatticeOf[int8, algebra.Root]()).Test(t)
	algebracontract.BoundedLattice(native.BoundedLatticeOf[uint16, algebra.Root]()).Test(t)
}

func TestOrderOf(t *testing.T) {
	algebracontract.Order(native.OrderOf[int, algebra.Root](),
		algebracontract.MakeElem(func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.IntBetween(-5, 5)
		})).Test(t)

	algebracontract.Order(native.OrderOf[string, algebra.Root](),
		algebracontract.MakeElem(func(tb testing.TB) string {
			return testcase.ToT(&tb).Random.StringNC(2, "ab")
		})).Test(t)

	algebracontract.Order(native.OrderOf[float64, algebra.Root]()).Test(t)
	algebracontract.Order(native.RatOrder[algebra.Root](),
		algebracontract.MakeElem(makeRat),
		algebracontract.Equal(ratEqual),
	).Test(t)
}

func TestEq(t *testing.T) {
	algebracontract.HashEquivalence[int, algebra.Root](native.Eq[int, algebra.Root]{},
		algebracontract.MakeElem(func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.IntBetween(0, 3)
		})).Test(t)

	eq := native.Eq[float64, algebra.Root]{}
	assert.True(t, eq.BinOp(0, math.Copysign(0, -1)))
	assert.Equal(t, eq.UnOp(0), eq.UnOp(math.Copysign(0, -1)))
}

func TestFoldEq(t *testing.T) {
	algebracontract.HashEquivalence[string, native.CaseFold](native.FoldEq[native.CaseFold]{},
		algebracontract.MakeElem(func(tb testing.TB) string {
			return testcase.ToT(&tb).Random.Pick([]string{"go", "Go", "GO", "gO", "straße", "STRASSE", "Kelvin", "Kelvin"}).(string)
		})).Test(t)

	var (
		exact  algebra.Equivalence[string, algebra.Root]     = native.Eq[string, algebra.Root]{}
		folded algebra.Equivalence[string, native.CaseFold] = native.FoldEq[native.CaseFold]{}
	)
	assert.False(t, exact.BinOp("Go", "GO"))
	assert.True(t, folded.BinOp("Go", "GO"))
}

func TestConcat(t *testing.T) {
	algebracontract.Monoid[string, algebra.Root](native.Concat[algebra.Root]{}).Test(t)
}

func TestSumAndProduct_distinctMarks(t *testing.T) {
	algebracontract.Group[int, algebra.Additive[algebra.Root]](native.Sum[int, algebra.Root]{}).Test(t)
	algebracontract.Monoid[int, algebra.Multiplicative[algebra.Root]](native.Product[int, algebra.Root]{}).Test(t)
}
