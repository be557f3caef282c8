package isokit

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Nil makes the empty list.
func Nil[T, E any](l Lister[T, E]) T {
	return l.Inject(fn.None[fn.T2[E, T]](), fn.NewLeft[func(Step[E, T]) fn.Unit, func(Step[E, T]) fn.T2[E, T]](
		func(Step[E, T]) fn.Unit { return fn.Unit{} },
	))
}

// Cons makes a list with head in front of tail.
func Cons[T, E any](l Lister[T, E], head E, tail T) T {
	return l.Inject(fn.Some(fn.NewT2(head, tail)), fn.NewRight[func(Step[E, T]) fn.Unit](
		func(s Step[E, T]) fn.T2[E, T] { return s.UnwrapOr(fn.NewT2(head, tail)) },
	))
}

// Uncons takes the first element off the list.
// It returns None for the empty list.
func Uncons[T, E any](l Lister[T, E], list T) Step[E, T] {
	return l.Project(list, fn.NewT2(
		func(fn.Unit) Step[E, T] { return fn.None[fn.T2[E, T]]() },
		func(cell fn.T2[E, T]) Step[E, T] { return fn.Some(cell) },
	))
}

// Elements yields the elements of the list from the front.
func Elements[T, E any](l Lister[T, E], list T) iter.Seq[E] {
	return func(yield func(E) bool) {
		for cur := list; ; {
			step := Uncons(l, cur)
			if step.IsNone() {
				return
			}
			var cell fn.T2[E, T]
			cell = step.UnwrapOr(cell)
			if !yield(cell.First()) {
				return
			}
			cur = cell.Second()
		}
	}
}

// FromSlice builds a list holding vs in the same order.
func FromSlice[T, E any](l Lister[T, E], vs []E) T {
	list := Nil(l)
	for i := len(vs) - 1; 0 <= i; i-- {
		list = Cons(l, vs[i], list)
	}
	return list
}
