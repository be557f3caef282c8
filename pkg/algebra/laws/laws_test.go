package laws_test

import (
	"math"
	"testing"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/algebra/laws"
	"go.llib.dev/algebrakit/pkg/algebra/native"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func eqInt(a, b int) bool { return a == b }

type brokenMark struct{}

func TestAssociativity(t *testing.T) {
	s := testcase.NewSpec(t)

	sg := testcase.Let[algebra.Semigroup[int, algebra.Root]](s, nil)
	act := func(t *testcase.T) error {
		return laws.Associativity(sg.Get(t), eqInt, 1, 2, 3)
	}

	s.When("the operation is associative", func(s *testcase.Spec) {
		sg.Let(s, func(t *testcase.T) algebra.Semigroup[int, algebra.Root] {
			return algebra.SemigroupOf[int, algebra.Root](func(a, b int) int { return a + b })
		})

		s.Then("no violation is reported", func(t *testcase.T) {
			assert.NoError(t, act(t))
		})
	})

	s.When("the operation is not associative", func(s *testcase.Spec) {
		sg.Let(s, func(t *testcase.T) algebra.Semigroup[int, algebra.Root] {
			return algebra.SemigroupOf[int, algebra.Root](func(a, b int) int { return a - b })
		})

		s.Then("a law violation is reported", func(t *testcase.T) {
			err := act(t)
			assert.ErrorIs(t, err, laws.ErrLawViolation)
			assert.Contain(t, err.Error(), "associativity")
		})
	})
}

func TestIdentity(t *testing.T) {
	good := algebra.MonoidOf[int, algebra.Root](func(a, b int) int { return a * b }, 1)
	assert.NoError(t, laws.Identity(good, eqInt, 42))

	bad := algebra.MonoidOf[int, algebra.Root](func(a, b int) int { return a * b }, 0)
	assert.ErrorIs(t, laws.Identity(bad, eqInt, 42), laws.ErrLawViolation)
}

func TestInverse(t *testing.T) {
	assert.NoError(t, laws.Inverse[int, algebra.Additive[algebra.Root]](native.Sum[int, algebra.Root]{}, eqInt, 7))

	bad := algebra.GroupOf[int, brokenMark](func(a, b int) int { return a + b }, 0, func(a int) int { return a })
	assert.ErrorIs(t, laws.Inverse(bad, eqInt, 7), laws.ErrLawViolation)
	assert.NoError(t, laws.Inverse(bad, eqInt, 0))
}

func TestRing(t *testing.T) {
	assert.NoError(t, laws.Ring(native.IntegerRing[int, algebra.Root](), eqInt, 3, -5, 11))

	bad := algebra.MakeRing[int, algebra.Root](
		native.Sum[int, algebra.Root]{},
		algebra.MonoidOf[int, algebra.Multiplicative[algebra.Root]](func(a, b int) int { return max(a, b) }, math.MinInt),
	)
	err := laws.Ring(bad, eqInt, 3, -5, 11)
	assert.ErrorIs(t, err, laws.ErrLawViolation)
	assert.Contain(t, err.Error(), "distributivity")
}

func TestField(t *testing.T) {
	assert.NoError(t, laws.Field(native.GF2[algebra.Root](), func(a, b bool) bool { return a == b }, true, false, true))

	lying := algebra.MakeField[int, algebra.Root](
		native.Sum[int, algebra.Root]{},
		algebra.PartialGroupOf[int, algebra.Multiplicative[algebra.Root]](
			func(a, b int) int { return a * b }, 1,
			func(v int) (int, error) { return v, nil },
		),
	)
	err := laws.Reciprocal(lying, eqInt, 0)
	assert.ErrorIs(t, err, laws.ErrLawViolation)
	assert.ErrorIs(t, laws.Reciprocal(lying, eqInt, 2), laws.ErrLawViolation)
	assert.NoError(t, laws.Reciprocal(lying, eqInt, 1))
}

func TestLattice(t *testing.T) {
	assert.NoError(t, laws.BoundedLattice(native.BoolLattice[algebra.Root](), func(a, b bool) bool { return a == b }, true, false, false))

	notAbsorbing := algebra.MakeLattice[int, algebra.Root](
		native.Min[int, algebra.Root]{},
		algebra.SemigroupOf[int, algebra.Supremum[algebra.Root]](func(a, b int) int { return min(a, b) }),
	)
	err := laws.Absorption(notAbsorbing, eqInt, 2, 1)
	assert.ErrorIs(t, err, laws.ErrLawViolation)
}

func TestOrder(t *testing.T) {
	o := native.OrderOf[string, algebra.Root]()
	assert.NoError(t, laws.Order(o, "a", "b", "c"))
	assert.NoError(t, laws.Order(o, "b", "b", "a"))

	flipped := algebra.MakeOrder[int, algebra.Root](
		native.Eq[int, algebra.Root]{},
		algebra.MakeLattice[int, algebra.Root](
			native.Min[int, algebra.Root]{},
			algebra.SemigroupOf[int, algebra.Supremum[algebra.Root]](func(a, b int) int { return min(a, b) }),
		),
	)
	assert.ErrorIs(t, laws.MinMax(flipped, 1, 2), laws.ErrLawViolation)
}

func TestHashConsistency(t *testing.T) {
	assert.NoError(t, laws.HashConsistency[string, native.CaseFold](native.FoldEq[native.CaseFold]{}, "Go", "gO"))

	inconsistent := algebra.HashEquivalenceOf[string, brokenMark](
		func(a, b string) bool { return len(a) == len(b) },
		func(s string) int { return int(s[0]) },
	)
	err := laws.HashConsistency(inconsistent, "ab", "cd")
	assert.ErrorIs(t, err, laws.ErrLawViolation)
	assert.Contain(t, err.Error(), "brokenMark")
}

func TestEquivalence(t *testing.T) {
	assert.NoError(t, laws.Equivalence[int, algebra.Root](native.Eq[int, algebra.Root]{}, 1, 1, 2))

	near := algebra.EquivalenceOf[int, algebra.Root](func(a, b int) bool { return a-b <= 1 && b-a <= 1 })
	assert.ErrorIs(t, laws.Transitivity(near, 1, 2, 3), laws.ErrLawViolation)

	lessThan := algebra.EquivalenceOf[int, algebra.Root](func(a, b int) bool { return a < b })
	assert.ErrorIs(t, laws.Reflexivity(lessThan, 1), laws.ErrLawViolation)
	assert.ErrorIs(t, laws.Symmetry(lessThan, 1, 2), laws.ErrLawViolation)
}
