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

func Semigroup[T, M any](sg algebra.Semigroup[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	s.Test("associativity", func(t *testcase.T) {
		c.repeat(t, func() {
			x, y, z := c.makeT(t), c.makeT(t), c.makeT(t)
			assert.NoError(t, laws.Associativity(sg, c.equal, x, y, z))
		})
	})

	return s.AsSuite(fmt.Sprintf("Semigroup[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func Monoid[T, M any](m algebra.Monoid[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	Semigroup[T, M](m, c).Spec(s)

	s.Test("identity", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.Identity(m, c.equal, c.makeT(t)))
		})
	})

	s.Test("identity is stable", func(t *testcase.T) {
		assert.True(t, c.equal(m.NullOp(), m.NullOp()))
	})

	return s.AsSuite(fmt.Sprintf("Monoid[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func Group[T, M any](g algebra.Group[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	Monoid[T, M](g, c).Spec(s)

	s.Test("inverse", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.Inverse(g, c.equal, c.makeT(t)))
		})
	})

	s.Test("the inverse of the identity is the identity", func(t *testcase.T) {
		assert.True(t, c.equal(g.UnOp(g.NullOp()), g.NullOp()))
	})

	return s.AsSuite(fmt.Sprintf("Group[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func Ring[T, M any](r algebra.Ring[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	s.Context("additive part", Group[T, algebra.Additive[M]](r.Additive, c).Spec)
	s.Context("multiplicative part", Monoid[T, algebra.Multiplicative[M]](r.Multiplicative, c).Spec)

	s.Test("addition is commutative", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.Commutativity[T, algebra.Additive[M]](r.Additive, c.equal, c.makeT(t), c.makeT(t)))
		})
	})

	s.Test("multiplication distributes over addition", func(t *testcase.T) {
		c.repeat(t, func() {
			x, y, z := c.makeT(t), c.makeT(t), c.makeT(t)
			assert.NoError(t, laws.Distributivity(r, c.equal, x, y, z))
		})
	})

	s.Test("zero annihilates", func(t *testcase.T) {
		c.repeat(t, func() {
			x := c.makeT(t)
			assert.True(t, c.equal(r.Mul(x, r.Zero()), r.Zero()))
			assert.True(t, c.equal(r.Mul(r.Zero(), x), r.Zero()))
		})
	})

	return s.AsSuite(fmt.Sprintf("Ring[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func Field[T, M any](f algebra.Field[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	Ring[T, M](f.Ring(), c).Spec(s)

	s.Test("multiplication is commutative", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.Commutativity[T, algebra.Multiplicative[M]](f.Multiplicative, c.equal, c.makeT(t), c.makeT(t)))
		})
	})

	s.Test("every element except zero has a multiplicative inverse", func(t *testcase.T) {
		c.repeat(t, func() {
			assert.NoError(t, laws.Reciprocal(f, c.equal, c.makeT(t)))
		})
	})

	s.Test("zero has no multiplicative inverse", func(t *testcase.T) {
		_, err := f.Inv(f.Zero())
		assert.Error(t, err)

		_, err = f.Div(f.One(), f.Zero())
		assert.Error(t, err)
	})

	return s.AsSuite(fmt.Sprintf("Field[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func Lattice[T, M any](l algebra.Lattice[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	s.Test("meet and join are associative, commutative and idempotent, and absorb each other", func(t *testcase.T) {
		c.repeat(t, func() {
			x, y, z := c.makeT(t), c.makeT(t), c.makeT(t)
			assert.NoError(t, laws.Lattice(l, c.equal, x, y, z))
		})
	})

	return s.AsSuite(fmt.Sprintf("Lattice[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}

func BoundedLattice[T, M any](l algebra.BoundedLattice[T, M], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	Lattice[T, M](l.Lattice(), c).Spec(s)

	s.Test("top is the identity of meet, bottom is the identity of join", func(t *testcase.T) {
		c.repeat(t, func() {
			x := c.makeT(t)
			assert.True(t, c.equal(l.Meet(x, l.Top()), x))
			assert.True(t, c.equal(l.Join(x, l.Bottom()), x))
		})
	})

	s.Test("bottom is below and top is above every element", func(t *testcase.T) {
		c.repeat(t, func() {
			x := c.makeT(t)
			assert.True(t, c.equal(l.Meet(x, l.Bottom()), l.Bottom()))
			assert.True(t, c.equal(l.Join(x, l.Top()), l.Top()))
		})
	})

	return s.AsSuite(fmt.Sprintf("BoundedLattice[%s, %s]", typeName[T](), algebra.MarkName[M]()))
}
