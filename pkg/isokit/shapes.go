package isokit

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// EitherShape is fn.Either as a sum.
type EitherShape[L, R, Res, Arg any] struct{}

var (
	_ SumProj[fn.Either[int, string], int, string, bool] = EitherShape[int, string, bool, bool]{}
	_ SumInj[fn.Either[int, string], int, string, bool]  = EitherShape[int, string, bool, bool]{}
)

func (EitherShape[L, R, Res, Arg]) Project(v fn.Either[L, R], h fn.T2[func(L) Res, func(R) Res]) Res {
	return fn.ElimEither(v, h.First(), h.Second())
}

func (EitherShape[L, R, Res, Arg]) Inject(arg Arg, inj fn.Either[func(Arg) L, func(Arg) R]) fn.Either[L, R] {
	return fn.ElimEither(inj,
		func(mkL func(Arg) L) fn.Either[L, R] { return fn.NewLeft[L, R](mkL(arg)) },
		func(mkR func(Arg) R) fn.Either[L, R] { return fn.NewRight[L](mkR(arg)) },
	)
}

// OptionShape is fn.Option as the sum of nothing and A.
type OptionShape[A, Res, Arg any] struct{}

var (
	_ SumProj[fn.Option[int], fn.Unit, int, bool] = OptionShape[int, bool, bool]{}
	_ SumInj[fn.Option[int], fn.Unit, int, bool]  = OptionShape[int, bool, bool]{}
)

func (OptionShape[A, Res, Arg]) Project(v fn.Option[A], h fn.T2[func(fn.Unit) Res, func(A) Res]) Res {
	return fn.ElimOption(v, func() Res { return h.First()(fn.Unit{}) }, h.Second())
}

func (OptionShape[A, Res, Arg]) Inject(arg Arg, inj fn.Either[func(Arg) fn.Unit, func(Arg) A]) fn.Option[A] {
	return fn.ElimEither(inj,
		func(mkNone func(Arg) fn.Unit) fn.Option[A] {
			mkNone(arg)
			return fn.None[A]()
		},
		func(mkSome func(Arg) A) fn.Option[A] { return fn.Some(mkSome(arg)) },
	)
}

// PairShape is fn.T2 as a product.
type PairShape[L, R, Res, Arg any] struct{}

var (
	_ ProdProj[fn.T2[int, string], int, string, bool] = PairShape[int, string, bool, bool]{}
	_ ProdInj[fn.T2[int, string], int, string, bool]  = PairShape[int, string, bool, bool]{}
)

func (PairShape[L, R, Res, Arg]) Project(v fn.T2[L, R], h fn.Either[func(L) Res, func(R) Res]) Res {
	return fn.ElimEither(h,
		func(first func(L) Res) Res { return first(v.First()) },
		func(second func(R) Res) Res { return second(v.Second()) },
	)
}

func (PairShape[L, R, Res, Arg]) Inject(arg Arg, inj fn.T2[func(Arg) L, func(Arg) R]) fn.T2[L, R] {
	return fn.NewT2(inj.First()(arg), inj.Second()(arg))
}

// BoxShape stores a single value in an fn.Option.
// Projecting an empty Option gives the zero value of A.
type BoxShape[A any] struct{}

var (
	_ UnitInj[fn.Option[int], int]  = BoxShape[int]{}
	_ UnitProj[fn.Option[int], int] = BoxShape[int]{}
)

func (BoxShape[A]) Inj(v A) fn.Option[A] { return fn.Some(v) }

func (BoxShape[A]) Proj(box fn.Option[A]) A {
	var zero A
	return box.UnwrapOr(zero)
}

// Case eliminates an Either, handing each branch its own context value
// so the branch functions need no closures.
func Case[L, R, LC, RC, Res any](e fn.Either[L, R], lc LC, left func(LC, L) Res, rc RC, right func(RC, R) Res) Res {
	return fn.ElimEither(e,
		func(l L) Res { return left(lc, l) },
		func(r R) Res { return right(rc, r) },
	)
}
