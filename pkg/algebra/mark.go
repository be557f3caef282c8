package algebra

import (
	"reflect"
	"strings"
)

// Root is the conventional leaf of a mark expression.
type Root struct{}

// Additive marks the additive part of a Ring or Field.
type Additive[M any] struct{}

// Multiplicative marks the multiplicative part of a Ring or Field.
type Multiplicative[M any] struct{}

// Infimum marks the meet operation of a Lattice.
type Infimum[M any] struct{}

// Supremum marks the join operation of a Lattice.
type Supremum[M any] struct{}

// Equative marks an equivalence relation and the hash that respects it.
type Equative[M any] struct{}

// Marked is implemented by every instance.
// The return type of Mark tells which instance of a shape the value is,
// the returned value itself carries no information.
type Marked[M any] interface {
	Mark() M
}

// MarkName renders a mark expression without its package paths, e.g. "Additive[Root]".
func MarkName[M any]() string {
	var (
		name  = reflect.TypeOf((*M)(nil)).Elem().String()
		out   strings.Builder
		ident strings.Builder
	)
	flush := func() {
		id := ident.String()
		if i := strings.LastIndex(id, "."); 0 <= i {
			id = id[i+1:]
		}
		out.WriteString(id)
		ident.Reset()
	}
	for _, r := range name {
		switch r {
		case '[', ']', ',', ' ':
			flush()
			out.WriteRune(r)
		default:
			ident.WriteRune(r)
		}
	}
	flush()
	return out.String()
}
