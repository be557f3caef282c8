package algebra

// NullOp produces a constant of T, such as an identity element, a top or a bottom.
type NullOp[T, M any] interface {
	Marked[M]
	NullOp() T
}

// UnOp maps a T to an R, such as an inverse.
type UnOp[T, R, M any] interface {
	Marked[M]
	UnOp(T) R
}

// BinOp combines an L and an R into a Res.
// It is the shape behind combination, comparison and projection.
type BinOp[L, R, Res, M any] interface {
	Marked[M]
	BinOp(L, R) Res
}

// NullOpFunc turns a function into a NullOp instance under the mark M.
type NullOpFunc[T, M any] func() T

func (fn NullOpFunc[T, M]) Mark() (m M) { return m }

func (fn NullOpFunc[T, M]) NullOp() T { return fn() }

// UnOpFunc turns a function into an UnOp instance under the mark M.
type UnOpFunc[T, R, M any] func(T) R

func (fn UnOpFunc[T, R, M]) Mark() (m M) { return m }

func (fn UnOpFunc[T, R, M]) UnOp(v T) R { return fn(v) }

// BinOpFunc turns a function into a BinOp instance under the mark M.
// A BinOpFunc[T, T, T, M] is a Semigroup[T, M].
type BinOpFunc[L, R, Res, M any] func(L, R) Res

func (fn BinOpFunc[L, R, Res, M]) Mark() (m M) { return m }

func (fn BinOpFunc[L, R, Res, M]) BinOp(l L, r R) Res { return fn(l, r) }

// Const returns a NullOp that always produces v.
func Const[T, M any](v T) NullOpFunc[T, M] {
	return func() T { return v }
}
