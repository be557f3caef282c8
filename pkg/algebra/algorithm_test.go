package algebra_test

import (
	"iter"
	"math"
	"math/big"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/algebra/native"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestFold(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.LetValue[[]string](s, nil)
	act := func(t *testcase.T) string {
		return algebra.Fold[string, algebra.Root](native.Concat[algebra.Root]{}, iterkit.Slice(values.Get(t)))
	}

	s.When("the sequence is empty", func(s *testcase.Spec) {
		values.LetValue(s, nil)

		s.Then("the identity is returned", func(t *testcase.T) {
			assert.Equal(t, "", act(t))
		})
	})

	s.When("the sequence has values", func(s *testcase.Spec) {
		values.LetValue(s, []string{"foo", "bar", "baz"})

		s.Then("they are combined in order", func(t *testcase.T) {
			assert.Equal(t, "foobarbaz", act(t))
		})
	})
}

func TestReduce(t *testing.T) {
	join := native.Max[int, algebra.Root]{}

	got := algebra.Reduce[int, algebra.Supremum[algebra.Root]](join, iterkit.Slice([]int{3, 9, -1}))
	assert.Equal(t, fn.Some(9), got)

	empty := algebra.Reduce[int, algebra.Supremum[algebra.Root]](join, iterkit.Slice([]int{}))
	assert.True(t, empty.IsNone())
}

func TestPower(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		value    = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(-9, 9) })
		exponent = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(0, 12) })
	)
	act := func(t *testcase.T) (int, error) {
		return algebra.Power[int, algebra.Multiplicative[algebra.Root]](native.Product[int, algebra.Root]{}, value.Get(t), exponent.Get(t))
	}

	s.Then("it is the same as repeated combination", func(t *testcase.T) {
		exp := 1
		for i := 0; i < exponent.Get(t); i++ {
			exp *= value.Get(t)
		}
		got, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.When("the exponent is zero", func(s *testcase.Spec) {
		exponent.LetValue(s, 0)

		s.Then("the identity is returned", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 1, got)
		})
	})

	s.When("the exponent is negative", func(s *testcase.Spec) {
		exponent.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(-10, -1) })

		s.Then("it fails with ErrNegativeExponent", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, algebra.ErrNegativeExponent)
		})
	})
}

func TestGroupPower(t *testing.T) {
	sum := native.Sum[int, algebra.Root]{}

	assert.Equal(t, 21, algebra.GroupPower[int, algebra.Additive[algebra.Root]](sum, 7, 3))
	assert.Equal(t, -21, algebra.GroupPower[int, algebra.Additive[algebra.Root]](sum, 7, -3))
	assert.Equal(t, 0, algebra.GroupPower[int, algebra.Additive[algebra.Root]](sum, 7, 0))
	assert.Equal(t, math.MinInt, algebra.GroupPower[int, algebra.Additive[algebra.Root]](sum, 1, math.MinInt))
}

func TestGroupPower_minInt(t *testing.T) {
	// the zero value of *big.Rat is nil, not the identity
	ratSum := native.RatSum[algebra.Root]{}

	got := algebra.GroupPower[*big.Rat, algebra.Additive[algebra.Root]](ratSum, big.NewRat(1, 1), math.MinInt)
	assert.NotNil(t, got)
	assert.True(t, got.Cmp(new(big.Rat).SetInt64(int64(math.MinInt))) == 0, assert.Message(got.String()))

	got = algebra.GroupPower[*big.Rat, algebra.Additive[algebra.Root]](ratSum, big.NewRat(-1, 2), math.MinInt)
	exp := new(big.Rat).SetFrac(new(big.Int).Neg(new(big.Int).SetInt64(int64(math.MinInt))), big.NewInt(2))
	assert.True(t, got.Cmp(exp) == 0, assert.Message(got.String()))
}

func TestSumAndProduct(t *testing.T) {
	f := native.RatField[algebra.Root]()
	var vs iter.Seq[*big.Rat] = iterkit.Slice([]*big.Rat{big.NewRat(1, 2), big.NewRat(1, 3), big.NewRat(1, 6)})

	assert.True(t, algebra.Sum(f.Ring(), vs).Cmp(big.NewRat(1, 1)) == 0)
	assert.True(t, algebra.Product(f.Ring(), vs).Cmp(big.NewRat(1, 36)) == 0)
	assert.True(t, algebra.Sum(f.Ring(), iterkit.Slice([]*big.Rat{})).Sign() == 0)
}

func TestMinimumAndMaximum(t *testing.T) {
	o := native.OrderOf[string, algebra.Root]()
	vs := iterkit.Slice([]string{"b", "c", "a"})

	assert.Equal(t, fn.Some("a"), algebra.Minimum(o, vs))
	assert.Equal(t, fn.Some("c"), algebra.Maximum(o, vs))
	assert.True(t, algebra.Minimum(o, iterkit.Slice([]string{})).IsNone())
}
