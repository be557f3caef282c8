package enumkit

import (
	"iter"
	"slices"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.llib.dev/algebrakit/pkg/compare"
)

// Ordinal enumerates a fixed list of values in the order they were given.
// Values outside of the list have no neighbours, and every range that involves one is empty.
type Ordinal[T comparable] struct {
	values []T
	index  map[T]int
}

var (
	_ Enumerable[string] = Ordinal[string]{}
	_ Rangeable[string]  = Ordinal[string]{}
)

// Of makes an Ordinal from values. A repeated value keeps its first position.
//
//	weekdays := enumkit.Of("Mon", "Tue", "Wed", "Thu", "Fri")
//	weekdays.EnumFromThenTo("Mon", "Wed", "Fri") // Mon, Wed, Fri
func Of[T comparable](values ...T) Ordinal[T] {
	o := Ordinal[T]{index: make(map[T]int, len(values))}
	for _, v := range values {
		if _, ok := o.index[v]; ok {
			continue
		}
		o.index[v] = len(o.values)
		o.values = append(o.values, v)
	}
	return o
}

func (o Ordinal[T]) Len() int { return len(o.values) }

func (o Ordinal[T]) Values() iter.Seq[T] { return slices.Values(o.values) }

// Index returns the position of v.
func (o Ordinal[T]) Index(v T) (int, bool) {
	i, ok := o.index[v]
	return i, ok
}

func (o Ordinal[T]) Succ(v T) fn.Option[T] {
	i, ok := o.index[v]
	if !ok || i+1 == len(o.values) {
		return fn.None[T]()
	}
	return fn.Some(o.values[i+1])
}

func (o Ordinal[T]) Pred(v T) fn.Option[T] {
	i, ok := o.index[v]
	if !ok || i == 0 {
		return fn.None[T]()
	}
	return fn.Some(o.values[i-1])
}

// Ordering orders the values by their position.
// It is only meaningful for values of the Ordinal.
func (o Ordinal[T]) Ordering() compare.Ordering[T] {
	return compare.MapCmp(compare.Ordered[int](), func(v T) int {
		if i, ok := o.index[v]; ok {
			return i
		}
		return -1
	})
}

func (o Ordinal[T]) EnumFrom(from T) iter.Seq[T] {
	if !o.contains(from) {
		return empty[T]()
	}
	return o.ranger().EnumFrom(from)
}

func (o Ordinal[T]) EnumFromThen(from, then T) iter.Seq[T] {
	if !o.contains(from, then) {
		return empty[T]()
	}
	return o.ranger().EnumFromThen(from, then)
}

func (o Ordinal[T]) EnumFromTo(from, to T) iter.Seq[T] {
	if !o.contains(from, to) {
		return empty[T]()
	}
	return o.ranger().EnumFromTo(from, to)
}

func (o Ordinal[T]) EnumFromThenTo(from, then, to T) iter.Seq[T] {
	if !o.contains(from, then, to) {
		return empty[T]()
	}
	return o.ranger().EnumFromThenTo(from, then, to)
}

func (o Ordinal[T]) ranger() Ranger[T] {
	return Ranger[T]{Enum: o, Order: o.Ordering()}
}

func (o Ordinal[T]) contains(vs ...T) bool {
	for _, v := range vs {
		if _, ok := o.index[v]; !ok {
			return false
		}
	}
	return true
}
