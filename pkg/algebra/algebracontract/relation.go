package algebracontract

import (
	"fmt"

	"go.llib.dev/algebrakit/pkg/algebra"
	"go.llib.dev/algebrakit/pkg/algebra/laws"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func Equivalence[T, M any](eq algebra.Equivalence[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	s.Test("reflexivity", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.Reflexivity(eq, c.makeT(t)))
		})
	})

	s.Test("symmetry", func(t *testcase.T) {
		c.repeat(t, func() {
			x := c.makeT(t)
			assert.NoError(t, laws.Symmetry(eq, x, c.makeT(t)))
			assert.NoError(t, laws.Symmetry(eq, x, x))
		})
	})

	s.Test("transitivity", func(t *testcase.T) {
		c.repeat(t, func() {
			x, y := c.makeT(t), c.makeT(t)
			assert.NoError(t, laws.Transitivity(eq, x, y, c.makeT(t)))
			assert.NoError(t, laws.Transitivity(eq, x, x, y))
		})
	})

	return s.AsSuite(fmt.Sprintf("Equivalence[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func HashEquivalence[T, M any](h algebra.HashEquivalence[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	Equivalence[T, M](h, c).Spec(s)

	s.Test("equal values hash identically", func(t *testcase.T) {
		c.repeat(t, func() {
			x := c.makeT(t)
			assert.NoError(t, laws.HashConsistency(h, x, x))
			assert.NoError(t, laws.HashConsistency(h, x, c.makeT(t)))
		})
	})

	return s.AsSuite(fmt.Sprintf("HashEquivalence[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func Order[T, M any](o algebra.Order[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	s.Context("equivalence", Equivalence[T, M](o.Equative, c).Spec)
	s.Context("lattice", Lattice[T, M](o.Lattice, c).Spec)

	s.Test("totality, antisymmetry and transitivity", func(t *testcase.T) {
		c.repeat(t, func() {
			x, y, z := c.makeT(t), c.makeT(t), c.makeT(t)
			assert.NoError(t, laws.Totality(o, x, y))
			assert.NoError(t, laws.Antisymmetry(o, x, y))
			assert.NoError(t, laws.OrderTransitivity(o, x, y, z))
		})
	})

	s.Test("meet and join are min and max", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.MinMax(o, c.makeT(t), c.makeT(t)))
		})
	})

	s.Test("Compare agrees with Less and Equal", func(t *testcase.T) {
		c.repeat(t, func() {
			x, y := c.makeT(t), c.makeT(t)
			switch o.Compare(x, y) {
			case 0:
				assert.True(t, o.Equal(x, y))
				assert.Equal(t, 0, o.Compare(y, x))
			case -1:
				assert.True(t, o.Less(x, y))
				assert.Equal(t, 1, o.Compare(y, x))
			case 1:
				assert.True(t, o.Less(y, x))
				assert.Equal(t, -1, o.Compare(y, x))
			default:
				t.Fatal("Compare must return -1, 0 or 1")
			}
		})
	})

	return s.AsSuite(fmt.Sprintf("Order[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}
