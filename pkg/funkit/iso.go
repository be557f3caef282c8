package funkit

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ToFunc wraps a value into a function of fn.Unit.
func ToFunc[V any](v V) func(fn.Unit) V {
	return func(fn.Unit) V { return v }
}

// ToValue is the inverse of ToFunc.
func ToValue[V any](f func(fn.Unit) V) V { return f(fn.Unit{}) }

// IsoFunc turns a nullary function into a function of fn.Unit.
func IsoFunc[Out any](f func() Out) func(fn.Unit) Out {
	return func(fn.Unit) Out { return f() }
}

// IsoThunk is the inverse of IsoFunc.
func IsoThunk[Out any](f func(fn.Unit) Out) func() Out {
	return func() Out { return f(fn.Unit{}) }
}

// AsAct drops the result of f, keeping only its side effects.
func AsAct[In, Out any](f func(In) Out) func(In) {
	return func(v In) { f(v) }
}

// AsFunc turns a procedure into a function that returns fn.Unit.
func AsFunc[In any](act func(In)) func(In) fn.Unit {
	return func(v In) fn.Unit {
		act(v)
		return fn.Unit{}
	}
}

// AsActU is AsAct for functions of fn.Unit.
func AsActU[Out any](f func(fn.Unit) Out) func() {
	return func() { f(fn.Unit{}) }
}

// AsFuncU is AsFunc for procedures without arguments.
func AsFuncU(act func()) func(fn.Unit) fn.Unit {
	return func(fn.Unit) fn.Unit {
		act()
		return fn.Unit{}
	}
}
