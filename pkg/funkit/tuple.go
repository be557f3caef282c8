package funkit

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

// Tuplify2 turns a function of two arguments into a function of one pair.
func Tuplify2[A, B, Out any](f func(A, B) Out) func(fn.T2[A, B]) Out {
	return func(t fn.T2[A, B]) Out { return f(t.Unpack()) }
}

func Tuplify3[A, B, C, Out any](f func(A, B, C) Out) func(Tuple3[A, B, C]) Out {
	return func(t Tuple3[A, B, C]) Out { return f(t.First, t.Second, t.Third) }
}

func Tuplify4[A, B, C, D, Out any](f func(A, B, C, D) Out) func(Tuple4[A, B, C, D]) Out {
	return func(t Tuple4[A, B, C, D]) Out { return f(t.First, t.Second, t.Third, t.Fourth) }
}

func Tuplify5[A, B, C, D, E, Out any](f func(A, B, C, D, E) Out) func(Tuple5[A, B, C, D, E]) Out {
	return func(t Tuple5[A, B, C, D, E]) Out { return f(t.First, t.Second, t.Third, t.Fourth, t.Fifth) }
}

func Tuplify6[A, B, C, D, E, F, Out any](f func(A, B, C, D, E, F) Out) func(Tuple6[A, B, C, D, E, F]) Out {
	return func(t Tuple6[A, B, C, D, E, F]) Out {
		return f(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth)
	}
}

// Untuplify2 is the inverse of Tuplify2.
func Untuplify2[A, B, Out any](f func(fn.T2[A, B]) Out) func(A, B) Out {
	return func(a A, b B) Out { return f(fn.NewT2(a, b)) }
}

func Untuplify3[A, B, C, Out any](f func(Tuple3[A, B, C]) Out) func(A, B, C) Out {
	return func(a A, b B, c C) Out { return f(Tuple3[A, B, C]{a, b, c}) }
}

func Untuplify4[A, B, C, D, Out any](f func(Tuple4[A, B, C, D]) Out) func(A, B, C, D) Out {
	return func(a A, b B, c C, d D) Out { return f(Tuple4[A, B, C, D]{a, b, c, d}) }
}

func Untuplify5[A, B, C, D, E, Out any](f func(Tuple5[A, B, C, D, E]) Out) func(A, B, C, D, E) Out {
	return func(a A, b B, c C, d D, e E) Out { return f(Tuple5[A, B, C, D, E]{a, b, c, d, e}) }
}

func Untuplify6[A, B, C, D, E, F, Out any](f func(Tuple6[A, B, C, D, E, F]) Out) func(A, B, C, D, E, F) Out {
	return func(a A, b B, c C, d D, e E, f_ F) Out { return f(Tuple6[A, B, C, D, E, F]{a, b, c, d, e, f_}) }
}
