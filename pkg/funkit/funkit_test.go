package funkit_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"go.llib.dev/algebrakit/pkg/funkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleFix() {
	fact := funkit.Fix(func(self func(int) int) func(int) int {
		return func(n int) int {
			if n <= 1 {
				return 1
			}
			return n * self(n-1)
		}
	})

	fmt.Println(fact(5))
	// Output: 120
}

func TestCompose(t *testing.T) {
	t.Parallel()

	var (
		double = func(n int) int { return n * 2 }
		show   = strconv.Itoa
		quote  = func(s string) string { return `"` + s + `"` }
	)

	require.Equal(t, "42", funkit.Compose(show, double)(21))
	require.Equal(t, `"42"`, funkit.Compose3(quote, show, double)(21))
	require.Equal(t, 8, funkit.Compose(double, funkit.Id[int])(4))
}

func TestSmallCombinators(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, funkit.Fst(1, "two"))
	require.Equal(t, "two", funkit.Snd(1, "two"))
	require.Equal(t, "FOO", funkit.App(strings.ToUpper, "foo"))
	require.Equal(t, "FOO", funkit.FeedTo("foo", strings.ToUpper))
	require.Equal(t, 7, funkit.Const[string](7)("ignored"))
	require.Equal(t, "v", funkit.Seq(42, "v"))
	require.Equal(t, "ba", funkit.Flip(func(a, b string) string { return a + b })("a", "b"))
}

func TestFix(t *testing.T) {
	s := testcase.NewSpec(t)

	var fib func(int) int
	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}

	fixFib := funkit.Fix(func(self func(int) int) func(int) int {
		return func(n int) int {
			if n < 2 {
				return n
			}
			return self(n-1) + self(n-2)
		}
	})

	s.Test("it reaches the same result as the explicit recursion", func(t *testcase.T) {
		n := t.Random.IntBetween(0, 20)
		assert.Equal(t, fib(n), fixFib(n))
	})

	s.Test("a generator that ignores its recursive argument is just the body", func(t *testcase.T) {
		constant := funkit.Fix(func(func(string) int) func(string) int { return func(s string) int { return len(s) } })
		v := t.Random.String()
		assert.Equal(t, len(v), constant(v))
	})
}

func TestCurry(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		a = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(-100, 100) })
		b = testcase.Let(s, func(t *testcase.T) string { return t.Random.String() })
		c = testcase.Let(s, func(t *testcase.T) bool { return t.Random.Bool() })
		d = testcase.Let(s, func(t *testcase.T) float64 { return t.Random.Float64() })
		e = testcase.Let(s, func(t *testcase.T) int { return t.Random.Int() })
		f = testcase.Let(s, func(t *testcase.T) string { return t.Random.String() })
	)

	f2 := func(a int, b string) string { return fmt.Sprint(a, b) }
	f3 := func(a int, b string, c bool) string { return fmt.Sprint(a, b, c) }
	f4 := func(a int, b string, c bool, d float64) string { return fmt.Sprint(a, b, c, d) }
	f5 := func(a int, b string, c bool, d float64, e int) string { return fmt.Sprint(a, b, c, d, e) }
	f6 := func(a int, b string, c bool, d float64, e int, f string) string { return fmt.Sprint(a, b, c, d, e, f) }

	s.Test("a curried function gives the same result as the original", func(t *testcase.T) {
		assert.Equal(t, f2(a.Get(t), b.Get(t)), funkit.Curry2(f2)(a.Get(t))(b.Get(t)))
		assert.Equal(t, f3(a.Get(t), b.Get(t), c.Get(t)), funkit.Curry3(f3)(a.Get(t))(b.Get(t))(c.Get(t)))
		assert.Equal(t, f4(a.Get(t), b.Get(t), c.Get(t), d.Get(t)),
			funkit.Curry4(f4)(a.Get(t))(b.Get(t))(c.Get(t))(d.Get(t)))
		assert.Equal(t, f5(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)),
			funkit.Curry5(f5)(a.Get(t))(b.Get(t))(c.Get(t))(d.Get(t))(e.Get(t)))
		assert.Equal(t, f6(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)),
			funkit.Curry6(f6)(a.Get(t))(b.Get(t))(c.Get(t))(d.Get(t))(e.Get(t))(f.Get(t)))
	})

	s.Test("Uncurry undoes Curry", func(t *testcase.T) {
		assert.Equal(t, f2(a.Get(t), b.Get(t)), funkit.Uncurry2(funkit.Curry2(f2))(a.Get(t), b.Get(t)))
		assert.Equal(t, f3(a.Get(t), b.Get(t), c.Get(t)), funkit.Uncurry3(funkit.Curry3(f3))(a.Get(t), b.Get(t), c.Get(t)))
		assert.Equal(t, f4(a.Get(t), b.Get(t), c.Get(t), d.Get(t)),
			funkit.Uncurry4(funkit.Curry4(f4))(a.Get(t), b.Get(t), c.Get(t), d.Get(t)))
		assert.Equal(t, f5(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)),
			funkit.Uncurry5(funkit.Curry5(f5))(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)))
		assert.Equal(t, f6(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)),
			funkit.Uncurry6(funkit.Curry6(f6))(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)))
	})

	s.Test("a tuplified function gives the same result as the original", func(t *testcase.T) {
		assert.Equal(t, f2(a.Get(t), b.Get(t)), funkit.Tuplify2(f2)(fn.NewT2(a.Get(t), b.Get(t))))
		assert.Equal(t, f3(a.Get(t), b.Get(t), c.Get(t)),
			funkit.Tuplify3(f3)(funkit.Tuple3[int, string, bool]{First: a.Get(t), Second: b.Get(t), Third: c.Get(t)}))
		assert.Equal(t, f4(a.Get(t), b.Get(t), c.Get(t), d.Get(t)),
			funkit.Tuplify4(f4)(funkit.Tuple4[int, string, bool, float64]{a.Get(t), b.Get(t), c.Get(t), d.Get(t)}))
		assert.Equal(t, f5(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)),
			funkit.Tuplify5(f5)(funkit.Tuple5[int, string, bool, float64, int]{a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)}))
		assert.Equal(t, f6(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)),
			funkit.Tuplify6(f6)(funkit.Tuple6[int, string, bool, float64, int, string]{a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)}))
	})

	s.Test("Untuplify undoes Tuplify", func(t *testcase.T) {
		assert.Equal(t, f2(a.Get(t), b.Get(t)), funkit.Untuplify2(funkit.Tuplify2(f2))(a.Get(t), b.Get(t)))
		assert.Equal(t, f3(a.Get(t), b.Get(t), c.Get(t)), funkit.Untuplify3(funkit.Tuplify3(f3))(a.Get(t), b.Get(t), c.Get(t)))
		assert.Equal(t, f4(a.Get(t), b.Get(t), c.Get(t), d.Get(t)),
			funkit.Untuplify4(funkit.Tuplify4(f4))(a.Get(t), b.Get(t), c.Get(t), d.Get(t)))
		assert.Equal(t, f5(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)),
			funkit.Untuplify5(funkit.Tuplify5(f5))(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t)))
		assert.Equal(t, f6(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)),
			funkit.Untuplify6(funkit.Tuplify6(f6))(a.Get(t), b.Get(t), c.Get(t), d.Get(t), e.Get(t), f.Get(t)))
	})
}

func TestIsomorphisms(t *testing.T) {
	t.Parallel()

	require.Equal(t, 42, funkit.ToValue(funkit.ToFunc(42)))
	require.Equal(t, "x", funkit.IsoThunk(funkit.IsoFunc(func() string { return "x" }))())

	var calls []int
	record := func(n int) { calls = append(calls, n) }

	require.Equal(t, fn.Unit{}, funkit.AsFunc(record)(1))
	funkit.AsAct(funkit.AsFunc(record))(2)
	funkit.AsAct(func(n int) string { record(n); return "dropped" })(3)
	require.Equal(t, []int{1, 2, 3}, calls)

	var ran int
	funkit.AsActU(funkit.AsFuncU(func() { ran++ }))()
	require.Equal(t, fn.Unit{}, funkit.AsFuncU(func() { ran++ })(fn.Unit{}))
	require.Equal(t, 2, ran)
}
