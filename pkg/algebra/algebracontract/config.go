package algebracontract

import (
	"reflect"
	"testing"

	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem makes a sample value.
	// It is required when T is a pointer or an interface type,
	// or when only part of T's values belong to the instance.
	MakeElem func(testing.TB) T
	// Equal is the equality used to compare the two sides of a law.
	// By default, it is reflect.DeepEqual.
	Equal func(a, b T) bool
	// Samples is the minimum number of sample sets a law is checked with.
	Samples int
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
	if c.Equal != nil {
		o.Equal = c.Equal
	}
	o.Samples = zerokit.Coalesce(c.Samples, o.Samples)
}

func MakeElem[T any](mk func(testing.TB) T) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.MakeElem = mk })
}

func Equal[T any](eq func(a, b T) bool) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Equal = eq })
}

func Samples[T any](n int) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Samples = n })
}

func (c Config[T]) makeT(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(T)).(T)
}

func (c Config[T]) equal(a, b T) bool {
	if c.Equal != nil {
		return c.Equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

func (c Config[T]) repeat(t *testcase.T, blk func()) {
	n := zerokit.Coalesce(c.Samples, 16)
	t.Random.Repeat(n, n*2, blk)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
