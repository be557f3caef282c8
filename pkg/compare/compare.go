// Package compare turns comparison functions and algebraic relations into comparator objects.
//
// An Equality pairs an equality predicate with a hash that respects it,
// an Ordering wraps a three-way comparison.
// Both are immutable values and safe for concurrent use.
package compare

import (
	"cmp"
	"strings"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/mathkit"
)

// Interface is implemented by types that know how to compare themselves to another value.
//
//	type Version int
//
//	func (v Version) Compare(oth Version) int {
//		return compare.Numbers(v, oth)
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}

// ShortInterface is the Cmp flavour of Interface, as in math/big.
type ShortInterface[T any] interface {
	Cmp(T) int
}

// Ord is the outcome of a three-way comparison.
type Ord int

const (
	Less    Ord = -1
	Equal   Ord = 0
	Greater Ord = 1
)

// ToOrd maps a negative result to Less, zero to Equal and a positive one to Greater.
func ToOrd(cmp int) Ord {
	switch {
	case cmp < 0:
		return Less
	case 0 < cmp:
		return Greater
	default:
		return Equal
	}
}

func (o Ord) Int() int { return int(ToOrd(int(o))) }

func (o Ord) String() string {
	switch ToOrd(int(o)) {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

// Reverse swaps Less and Greater.
func (o Ord) Reverse() Ord { return -ToOrd(int(o)) }

// Equality is an equality predicate together with a hash function,
// where equal values always hash identically.
//
// Use the constructors to make one. The zero value is the trivial equality,
// where every pair of values is equal and every value hashes to zero.
type Equality[T any] struct {
	equal func(a, b T) bool
	hash  func(T) int
}

func (e Equality[T]) Equal(a, b T) bool {
	if e.equal == nil {
		return true
	}
	return e.equal(a, b)
}

func (e Equality[T]) Hash(v T) int {
	if e.hash == nil {
		return 0
	}
	return e.hash(v)
}

// Ordering is a three-way comparison of T values.
//
// Use the constructors to make one. The zero value orders every pair as Equal.
type Ordering[T any] struct {
	compare func(a, b T) Ord
}

func (o Ordering[T]) Compare(a, b T) Ord {
	if o.compare == nil {
		return Equal
	}
	return o.compare(a, b)
}

func (o Ordering[T]) Less(a, b T) bool { return o.Compare(a, b) == Less }

// Eq makes an Equality from a predicate and a hash.
// Without a hash, every value hashes to zero, which is consistent but slow in hash based containers.
func Eq[T any](equal func(a, b T) bool, hash func(T) int) Equality[T] {
	return Equality[T]{equal: equal, hash: hash}
}

// EqOf makes an Equality from an algebraic equivalence and its hash.
func EqOf[T, M any](h algebra.HashEquivalence[T, M]) Equality[T] {
	return Equality[T]{equal: h.BinOp, hash: h.UnOp}
}

// Cmp makes an Ordering from a comparison function in the style of cmp.Compare.
func Cmp[T any](compare func(a, b T) int) Ordering[T] {
	return Ordering[T]{compare: func(a, b T) Ord { return ToOrd(compare(a, b)) }}
}

// CmpOf makes an Ordering from an algebraic order.
func CmpOf[T, M any](o algebra.Order[T, M]) Ordering[T] {
	return Cmp(o.Compare)
}

// Ordered is the natural order of T.
func Ordered[T cmp.Ordered]() Ordering[T] {
	return Cmp(cmp.Compare[T])
}

// Comparable is the order defined by T's own Compare method.
func Comparable[T Interface[T]]() Ordering[T] {
	return Cmp(func(a, b T) int { return a.Compare(b) })
}

// Cmpable is the order defined by T's own Cmp method, such as *big.Rat or *big.Int.
func Cmpable[T ShortInterface[T]]() Ordering[T] {
	return Cmp(func(a, b T) int { return a.Cmp(b) })
}

// MapEq compares A values by their projection to K.
// The projection runs on every call, its results are not cached.
func MapEq[A, K any](e Equality[K], project func(A) K) Equality[A] {
	return Equality[A]{
		equal: func(a, b A) bool { return e.Equal(project(a), project(b)) },
		hash:  func(v A) int { return e.Hash(project(v)) },
	}
}

// MapCmp orders A values by their projection to K.
// The projection runs on every call, its results are not cached.
func MapCmp[A, K any](o Ordering[K], project func(A) K) Ordering[A] {
	return Ordering[A]{compare: func(a, b A) Ord { return o.Compare(project(a), project(b)) }}
}

// Reverse returns the opposite order.
func Reverse[T any](o Ordering[T]) Ordering[T] {
	return Ordering[T]{compare: func(a, b T) Ord { return o.Compare(b, a) }}
}

// Func returns the Ordering as a comparison function, to be used with slices.SortFunc and friends.
func Func[T any](o Ordering[T]) func(a, b T) int {
	return func(a, b T) int { return o.Compare(a, b).Int() }
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool { return cmp == 0 }

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool { return cmp < 0 }

func IsLessOrEqual(cmp int) bool { return cmp <= 0 }

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool { return 0 < cmp }

func IsGreaterOrEqual(cmp int) bool { return 0 <= cmp }

func Numbers[T mathkit.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
