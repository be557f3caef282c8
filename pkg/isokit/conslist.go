package isokit

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ConsList is an immutable singly linked list.
// Prepending shares the existing elements, so every version of the list stays valid.
// The zero value is the empty list.
type ConsList[E any] struct {
	head   *consElem[E]
	length int
}

type consElem[E any] struct {
	data E
	next *consElem[E]
}

func (l ConsList[E]) Len() int { return l.length }

// Prepend returns a new list with v in front of l.
func (l ConsList[E]) Prepend(v E) ConsList[E] {
	return ConsList[E]{head: &consElem[E]{data: v, next: l.head}, length: l.length + 1}
}

func (l ConsList[E]) Iter() iter.Seq[E] {
	return func(yield func(E) bool) {
		for current := l.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (l ConsList[E]) Slice() []E {
	vs := make([]E, 0, l.length)
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (l ConsList[E]) tail() ConsList[E] {
	return ConsList[E]{head: l.head.next, length: l.length - 1}
}

// ConsShape is ConsList as a List.
type ConsShape[E, Res, Arg any] struct{}

var _ Lister[ConsList[int], int] = ConsShape[int, Step[int, ConsList[int]], Step[int, ConsList[int]]]{}

func (ConsShape[E, Res, Arg]) Project(l ConsList[E], h fn.T2[func(fn.Unit) Res, func(fn.T2[E, ConsList[E]]) Res]) Res {
	if l.head == nil {
		return h.First()(fn.Unit{})
	}
	return h.Second()(fn.NewT2(l.head.data, l.tail()))
}

func (ConsShape[E, Res, Arg]) Inject(arg Arg, inj fn.Either[func(Arg) fn.Unit, func(Arg) fn.T2[E, ConsList[E]]]) ConsList[E] {
	return fn.ElimEither(inj,
		func(mkNil func(Arg) fn.Unit) ConsList[E] {
			mkNil(arg)
			return ConsList[E]{}
		},
		func(mkCons func(Arg) fn.T2[E, ConsList[E]]) ConsList[E] {
			head, tail := mkCons(arg).Unpack()
			return tail.Prepend(head)
		},
	)
}

// NewConsList makes a ConsList of vs, keeping their order.
func NewConsList[E any](vs ...E) ConsList[E] {
	return FromSlice[ConsList[E], E](ConsShape[E, Step[E, ConsList[E]], Step[E, ConsList[E]]]{}, vs)
}
