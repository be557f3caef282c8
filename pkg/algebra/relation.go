package algebra

// Equivalence is an "equal under some notion" relation.
// A single T may have several independent equivalences, told apart by M.
type Equivalence[T, M any] interface {
	BinOp[T, T, bool, Equative[M]]
}

// Hashable produces a hash that respects the Equivalence with the same mark:
// values that are equal under it must hash identically.
type Hashable[T, M any] interface {
	UnOp[T, int, Equative[M]]
}

// HashEquivalence is an instance that is both an Equivalence and its Hashable.
type HashEquivalence[T, M any] interface {
	Equivalence[T, M]
	Hashable[T, M]
}

func EquivalenceOf[T, M any](equal func(a, b T) bool) Equivalence[T, M] {
	return BinOpFunc[T, T, bool, Equative[M]](equal)
}

func HashEquivalenceOf[T, M any](equal func(a, b T) bool, hash func(T) int) HashEquivalence[T, M] {
	return hashEquivalence[T, M]{
		BinOpFunc: equal,
		UnOpFunc:  hash,
	}
}

type hashEquivalence[T, M any] struct {
	BinOpFunc[T, T, bool, Equative[M]]
	UnOpFunc[T, int, Equative[M]]
}

func (hashEquivalence[T, M]) Mark() (m Equative[M]) { return m }

// Order is a total order: an Equivalence and a Lattice over the same T and M,
// where meet and join are min and max.
//
// Meet and join must agree with one total preorder,
// antisymmetric up to the Equivalence.
type Order[T, M any] struct {
	Equative Equivalence[T, M]
	Lattice[T, M]
}

func MakeOrder[T, M any](eq Equivalence[T, M], l Lattice[T, M]) Order[T, M] {
	return Order[T, M]{Equative: eq, Lattice: l}
}

func (o Order[T, M]) Equal(a, b T) bool { return o.Equative.BinOp(a, b) }

// Compare returns 0 when a and b are equivalent,
// -1 when a is the meet of a and b, and +1 otherwise.
func (o Order[T, M]) Compare(a, b T) int {
	if o.Equal(a, b) {
		return 0
	}
	if o.Equal(o.Meet(a, b), a) {
		return -1
	}
	return 1
}

func (o Order[T, M]) Less(a, b T) bool { return o.Compare(a, b) < 0 }

func (o Order[T, M]) LessOrEqual(a, b T) bool { return o.Compare(a, b) <= 0 }

func (o Order[T, M]) Min(a, b T) T { return o.Meet(a, b) }

func (o Order[T, M]) Max(a, b T) T { return o.Join(a, b) }
