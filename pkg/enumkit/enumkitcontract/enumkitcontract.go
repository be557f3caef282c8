package enumkitcontract

import (
	"iter"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/compare"
	"go.llib.dev/algebrakit/pkg/enumkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Subject is what a Rangeable contract checks:
// the ranges are compared against walking Enum one step at a time.
type Subject[T any] struct {
	Range enumkit.Rangeable[T]
	Enum  enumkit.Enumerable[T]
	Order compare.Ordering[T]
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem is required.
	// The values it makes should be a few hundred steps apart at most,
	// as the contract walks the distance between them.
	MakeElem func(testing.TB) T
	// Limit caps how many values are taken from an unbounded range.
	Limit int
}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
	o.Limit = zerokit.Coalesce(c.Limit, o.Limit)
}

func MakeElem[T any](mk func(testing.TB) T) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.MakeElem = mk })
}

func Limit[T any](n int) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Limit = n })
}

func Rangeable[T any](subject Subject[T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)
	limit := zerokit.Coalesce(c.Limit, 64)

	var (
		a = testcase.Let(s, func(t *testcase.T) T { return c.MakeElem(t) })
		b = testcase.Let(s, func(t *testcase.T) T { return c.MakeElem(t) })
	)
	lo := func(t *testcase.T) T {
		if subject.Order.Compare(b.Get(t), a.Get(t)) == compare.Less {
			return b.Get(t)
		}
		return a.Get(t)
	}
	hi := func(t *testcase.T) T {
		if subject.Order.Compare(b.Get(t), a.Get(t)) == compare.Less {
			return a.Get(t)
		}
		return b.Get(t)
	}

	s.Describe("EnumFromTo", func(s *testcase.Spec) {
		s.Then("an ascending range starts at from, ends at to, and has steps+1 elements", func(t *testcase.T) {
			got := iterkit.Collect(subject.Range.EnumFromTo(lo(t), hi(t)))
			steps, ok := distance(subject, lo(t), hi(t))
			assert.True(t, ok, "to is expected to be reachable from from")
			assert.Equal(t, steps+1, len(got))
			assert.Equal(t, compare.Equal, subject.Order.Compare(got[0], lo(t)))
			assert.Equal(t, compare.Equal, subject.Order.Compare(got[len(got)-1], hi(t)))
			assertNeighbours(t, subject, got, 1, subject.Enum.Succ)
		})

		s.Then("a descending range is the ascending range reversed", func(t *testcase.T) {
			up := iterkit.Collect(subject.Range.EnumFromTo(lo(t), hi(t)))
			down := iterkit.Collect(subject.Range.EnumFromTo(hi(t), lo(t)))
			assert.Equal(t, len(up), len(down))
			for i := range up {
				assert.Equal(t, compare.Equal, subject.Order.Compare(up[i], down[len(down)-1-i]))
			}
		})

		s.Then("a range from a value to itself has one element", func(t *testcase.T) {
			got := iterkit.Collect(subject.Range.EnumFromTo(a.Get(t), a.Get(t)))
			assert.Equal(t, 1, len(got))
		})

		s.Then("the range can be consumed more than once", func(t *testcase.T) {
			seq := subject.Range.EnumFromTo(lo(t), hi(t))
			assert.Equal(t, iterkit.Collect(seq), iterkit.Collect(seq))
		})

		s.Then("the range can be pulled and stopped early", func(t *testcase.T) {
			next, stop := iter.Pull(subject.Range.EnumFromTo(lo(t), hi(t)))
			defer stop()
			v, ok := next()
			assert.True(t, ok)
			assert.Equal(t, compare.Equal, subject.Order.Compare(v, lo(t)))
		})
	})

	s.Describe("EnumFromThenTo", func(s *testcase.Spec) {
		var step = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(1, 5) })

		s.Then("consecutive elements are a constant step apart and do not pass to", func(t *testcase.T) {
			th, ok := walk(subject.Enum.Succ, lo(t), step.Get(t))
			if !ok {
				t.Skip("then is out of the range of the type")
			}
			got := iterkit.Collect(subject.Range.EnumFromThenTo(lo(t), th, hi(t)))
			assert.NotEmpty(t, got)
			assert.Equal(t, compare.Equal, subject.Order.Compare(got[0], lo(t)))
			assertNeighbours(t, subject, got, step.Get(t), subject.Enum.Succ)
			for _, v := range got {
				assert.NotEqual(t, compare.Greater, subject.Order.Compare(v, hi(t)))
			}
			if after, ok := walk(subject.Enum.Succ, got[len(got)-1], step.Get(t)); ok {
				assert.Equal(t, compare.Greater, subject.Order.Compare(after, hi(t)),
					"the range is truncated only when the next element would pass to")
			}
		})

		s.Then("a descending step walks down to to", func(t *testcase.T) {
			th, ok := walk(subject.Enum.Pred, hi(t), step.Get(t))
			if !ok {
				t.Skip("then is out of the range of the type")
			}
			got := iterkit.Collect(subject.Range.EnumFromThenTo(hi(t), th, lo(t)))
			assert.NotEmpty(t, got)
			assertNeighbours(t, subject, got, step.Get(t), subject.Enum.Pred)
			for _, v := range got {
				assert.NotEqual(t, compare.Less, subject.Order.Compare(v, lo(t)))
			}
		})

		s.Then("a zero step yields from once", func(t *testcase.T) {
			got := iterkit.Collect(subject.Range.EnumFromThenTo(lo(t), lo(t), hi(t)))
			assert.Equal(t, 1, len(got))
		})
	})

	s.Describe("EnumFrom", func(s *testcase.Spec) {
		s.Then("it walks the successors", func(t *testcase.T) {
			got := iterkit.Collect(iterkit.Limit(subject.Range.EnumFrom(a.Get(t)), limit))
			assert.NotEmpty(t, got)
			assert.Equal(t, compare.Equal, subject.Order.Compare(got[0], a.Get(t)))
			assertNeighbours(t, subject, got, 1, subject.Enum.Succ)
		})
	})

	s.Describe("EnumFromThen", func(s *testcase.Spec) {
		s.Then("it walks with a constant step", func(t *testcase.T) {
			th, ok := walk(subject.Enum.Succ, a.Get(t), 2)
			if !ok {
				t.Skip("then is out of the range of the type")
			}
			got := iterkit.Collect(iterkit.Limit(subject.Range.EnumFromThen(a.Get(t), th), limit))
			assert.True(t, 2 <= len(got))
			assertNeighbours(t, subject, got, 2, subject.Enum.Succ)
		})

		s.Then("a zero step repeats from", func(t *testcase.T) {
			got := iterkit.Collect(iterkit.Limit(subject.Range.EnumFromThen(a.Get(t), a.Get(t)), limit))
			assert.Equal(t, limit, len(got))
			for _, v := range got {
				assert.Equal(t, compare.Equal, subject.Order.Compare(v, a.Get(t)))
			}
		})
	})

	return s.AsSuite("Rangeable")
}

func walk[T any](next func(T) fn.Option[T], from T, k int) (T, bool) {
	cur := from
	for i := 0; i < k; i++ {
		n := next(cur)
		if n.IsNone() {
			return cur, false
		}
		cur = n.UnwrapOr(cur)
	}
	return cur, true
}

// distance counts the successor steps from a to b.
func distance[T any](subject Subject[T], a, b T) (int, bool) {
	var (
		cur   = a
		steps = 0
	)
	for subject.Order.Compare(cur, b) == compare.Less {
		n := subject.Enum.Succ(cur)
		if n.IsNone() {
			return 0, false
		}
		cur, steps = n.UnwrapOr(cur), steps+1
	}
	return steps, subject.Order.Compare(cur, b) == compare.Equal
}

func assertNeighbours[T any](t *testcase.T, subject Subject[T], vs []T, k int, next func(T) fn.Option[T]) {
	t.Helper()
	for i := 1; i < len(vs); i++ {
		exp, ok := walk(next, vs[i-1], k)
		assert.True(t, ok)
		assert.Equal(t, compare.Equal, subject.Order.Compare(vs[i], exp),
			"elements are expected to be a constant step apart")
	}
}
