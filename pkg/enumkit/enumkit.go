// Package enumkit enumerates and ranges over values of a type, lazily.
//
// Every range is an iter.Seq: it is restartable, can be consumed with iter.Pull,
// and is only finite when an end boundary is given or the type runs out of values.
package enumkit

import (
	"iter"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Enumerable tells the neighbours of a value.
// Succ and Pred return None when the value has no successor or predecessor.
type Enumerable[T any] interface {
	Succ(T) fn.Option[T]
	Pred(T) fn.Option[T]
}

// Rangeable produces lazy ranges of T.
//
// The direction of a range is given by the step (from → then),
// or, for EnumFromTo, by whether from is above to.
type Rangeable[T any] interface {
	// EnumFrom yields from and every value after it.
	EnumFrom(from T) iter.Seq[T]
	// EnumFromThen yields from, then, and every value that follows with the same step.
	EnumFromThen(from, then T) iter.Seq[T]
	// EnumFromTo yields the values between from and to, both inclusive.
	EnumFromTo(from, to T) iter.Seq[T]
	// EnumFromThenTo yields the values of EnumFromThen that do not pass to.
	EnumFromThenTo(from, then, to T) iter.Seq[T]
}
