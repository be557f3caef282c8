package enumkit

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/mathkit"
)

// Integer enumerates an integer type.
//
// Ranges halt at the representational limits of T, they never wrap around:
// Integer[int8]{}.EnumFrom(126) yields 126 and 127, then stops.
type Integer[T mathkit.Int] struct{}

var (
	_ Enumerable[int] = Integer[int]{}
	_ Rangeable[int]  = Integer[int]{}
)

func (Integer[T]) Succ(v T) fn.Option[T] {
	if v == mathkit.MaxOf[T]() {
		return fn.None[T]()
	}
	return fn.Some(v + 1)
}

func (Integer[T]) Pred(v T) fn.Option[T] {
	if v == mathkit.MinOf[T]() {
		return fn.None[T]()
	}
	return fn.Some(v - 1)
}

func (i Integer[T]) EnumFrom(from T) iter.Seq[T] {
	return i.EnumFromTo(from, mathkit.MaxOf[T]())
}

func (i Integer[T]) EnumFromThen(from, then T) iter.Seq[T] {
	switch {
	case from < then:
		return i.EnumFromThenTo(from, then, mathkit.MaxOf[T]())
	case then < from:
		return i.EnumFromThenTo(from, then, mathkit.MinOf[T]())
	default:
		return repeat(from)
	}
}

func (Integer[T]) EnumFromTo(from, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if from <= to {
			for v := from; yield(v) && v != to; v++ {
			}
			return
		}
		for v := from; yield(v) && v != to; v-- {
		}
	}
}

func (Integer[T]) EnumFromThenTo(from, then, to T) iter.Seq[T] {
	switch {
	case from < then:
		if to < from {
			return empty[T]()
		}
		if mathkit.CanSubOverflow(then, from) {
			return upToLimit(from, then, to)
		}
		return ascending(from, then-from, to)
	case then < from:
		if from < to {
			return empty[T]()
		}
		if mathkit.CanSubOverflow(from, then) {
			return upToLimit(from, then, to)
		}
		return descending(from, from-then, to)
	default:
		if to < from {
			return empty[T]()
		}
		return once(from)
	}
}

func ascending[T mathkit.Int](from, step, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := from; yield(v); v += step {
			if mathkit.CanAddOverflow(v, step) || to < v+step {
				return
			}
		}
	}
}

func descending[T mathkit.Int](from, step, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := from; yield(v); v -= step {
			if mathkit.CanSubOverflow(v, step) || v-step < to {
				return
			}
		}
	}
}

// upToLimit is the range of a step that does not fit into T,
// so nothing can follow then.
func upToLimit[T mathkit.Int](from, then, to T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(from) {
			return
		}
		if (from < then && then <= to) || (then < from && to <= then) {
			yield(then)
		}
	}
}
