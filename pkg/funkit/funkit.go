// Package funkit holds small, pure function combinators.
package funkit

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Compose returns g after f.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return fn.Comp(f, g)
}

// Compose3 returns h after g after f.
func Compose3[A, B, C, D any](h func(C) D, g func(B) C, f func(A) B) func(A) D {
	return fn.Comp(fn.Comp(f, g), h)
}

// Const returns a function that ignores its argument and always returns v.
func Const[In, Out any](v Out) func(In) Out {
	return func(In) Out { return v }
}

func Fst[A, B any](a A, _ B) A { return a }

func Snd[A, B any](_ A, b B) B { return b }

// App applies f to v.
func App[A, B any](f func(A) B, v A) B { return f(v) }

func Id[A any](v A) A { return v }

// Flip swaps the arguments of f.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}

// FeedTo passes v to f, App with the arguments swapped.
func FeedTo[A, B any](v A, f func(A) B) B { return f(v) }

// Seq discards its first argument and returns the second.
// It is useful to sequence an expression evaluated for its side effect before a value.
func Seq[A, B any](_ A, v B) B { return v }

// Fix returns the fixed point of f: a function that calls f with itself as the recursive step.
//
//	fact := funkit.Fix(func(self func(int) int) func(int) int {
//		return func(n int) int {
//			if n <= 1 {
//				return 1
//			}
//			return n * self(n-1)
//		}
//	})
//
// Fix does not guard against a generator that never reaches a base case,
// such a function recurses until the stack runs out.
func Fix[A, B any](f func(func(A) B) func(A) B) func(A) B {
	var self func(A) B
	self = func(v A) B { return f(self)(v) }
	return self
}
