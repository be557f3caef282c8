// Package isokit describes tagged unions and pairs by how they are built and taken apart,
// instead of by their representation.
//
// A sum (L + R) is eliminated by a pair of handlers and introduced by either of two injectors.
// A product (L × R) is eliminated by either of two handlers and introduced by a pair of injectors.
// Any type that can be taken apart and put together this way conforms,
// whatever its memory layout is.
//
// Go methods cannot introduce type parameters,
// so the result type of a projection (Res) and the seed type of an injection (Arg)
// are parameters of the interfaces themselves.
// Shapes in this package are zero-size, so a new instantiation for another Res or Arg costs nothing.
package isokit

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// SumProj eliminates a sum: exactly one of the handlers runs,
// the one that belongs to the branch the value holds.
type SumProj[T, L, R, Res any] interface {
	Project(T, fn.T2[func(L) Res, func(R) Res]) Res
}

// SumInj introduces a sum: the choice of the injector decides the branch.
type SumInj[T, L, R, Arg any] interface {
	Inject(Arg, fn.Either[func(Arg) L, func(Arg) R]) T
}

// ProdProj eliminates a product by picking one of its components with the chosen handler.
type ProdProj[T, L, R, Res any] interface {
	Project(T, fn.Either[func(L) Res, func(R) Res]) Res
}

// ProdInj introduces a product, making both components from one seed.
type ProdInj[T, L, R, Arg any] interface {
	Inject(Arg, fn.T2[func(Arg) L, func(Arg) R]) T
}

// UnitInj puts a value into a single value container.
type UnitInj[C, S any] interface {
	Inj(S) C
}

// UnitProj takes the value out of a single value container.
type UnitProj[C, S any] interface {
	Proj(C) S
}

// List is the sum of an empty marker and a pair of an element and the rest of the list.
type List[T, E, Res, Arg any] interface {
	SumInj[T, fn.Unit, fn.T2[E, T], Arg]
	SumProj[T, fn.Unit, fn.T2[E, T], Res]
}

// Step is the result of taking one element off a list: None for the empty list.
type Step[E, T any] = fn.Option[fn.T2[E, T]]

// Lister is the List instantiation the list algorithms of this package work with.
type Lister[T, E any] interface {
	List[T, E, Step[E, T], Step[E, T]]
}
