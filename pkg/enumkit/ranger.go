package enumkit

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/compare"
)

// Ranger derives every Rangeable operation from an Enumerable and an Ordering.
// A step of k is walked as k calls to Succ or Pred.
type Ranger[T any] struct {
	Enum  Enumerable[T]
	Order compare.Ordering[T]
}

var _ Rangeable[int] = Ranger[int]{}

func (r Ranger[T]) EnumFrom(from T) iter.Seq[T] {
	return r.walk(from, 1, r.Enum.Succ, nil)
}

func (r Ranger[T]) EnumFromThen(from, then T) iter.Seq[T] {
	switch r.Order.Compare(from, then) {
	case compare.Less:
		return r.stepped(from, then, r.Enum.Succ, nil)
	case compare.Greater:
		return r.stepped(from, then, r.Enum.Pred, nil)
	default:
		return repeat(from)
	}
}

func (r Ranger[T]) EnumFromTo(from, to T) iter.Seq[T] {
	if r.Order.Compare(to, from) == compare.Less {
		return r.walk(from, 1, r.Enum.Pred, r.notBelow(to))
	}
	return r.walk(from, 1, r.Enum.Succ, r.notAbove(to))
}

func (r Ranger[T]) EnumFromThenTo(from, then, to T) iter.Seq[T] {
	switch r.Order.Compare(from, then) {
	case compare.Less:
		if r.Order.Compare(to, from) == compare.Less {
			return empty[T]()
		}
		return r.stepped(from, then, r.Enum.Succ, r.notAbove(to))
	case compare.Greater:
		if r.Order.Compare(from, to) == compare.Less {
			return empty[T]()
		}
		return r.stepped(from, then, r.Enum.Pred, r.notBelow(to))
	default:
		if r.Order.Compare(to, from) == compare.Less {
			return empty[T]()
		}
		return once(from)
	}
}

// stepped walks from → then with next, counting the steps,
// and ranges with that step size.
// When then cannot be reached, the range is only from.
func (r Ranger[T]) stepped(from, then T, next func(T) fn.Option[T], within func(T) bool) iter.Seq[T] {
	var (
		ahead = r.Order.Compare(from, then)
		k     = 0
		cur   = from
	)
	for {
		n, ok := get(next(cur))
		if !ok {
			return r.walk(from, 0, next, within)
		}
		k, cur = k+1, n
		switch r.Order.Compare(cur, then) {
		case compare.Equal:
			return r.walk(from, k, next, within)
		case ahead:
			continue
		default: // stepped over then
			return r.walk(from, 0, next, within)
		}
	}
}

// walk yields from and every k-th value reached with next, while within allows it.
// A k of zero yields only from.
func (r Ranger[T]) walk(from T, k int, next func(T) fn.Option[T], within func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := from
		for {
			if within != nil && !within(cur) {
				return
			}
			if !yield(cur) {
				return
			}
			if k == 0 {
				return
			}
			for i := 0; i < k; i++ {
				n, ok := get(next(cur))
				if !ok {
					return
				}
				cur = n
			}
		}
	}
}

func (r Ranger[T]) notAbove(to T) func(T) bool {
	return func(v T) bool { return r.Order.Compare(v, to) != compare.Greater }
}

func (r Ranger[T]) notBelow(to T) func(T) bool {
	return func(v T) bool { return r.Order.Compare(v, to) != compare.Less }
}

func get[T any](o fn.Option[T]) (T, bool) {
	var zero T
	return o.UnwrapOr(zero), o.IsSome()
}

func repeat[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(v) {
		}
	}
}

func once[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

func empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}
