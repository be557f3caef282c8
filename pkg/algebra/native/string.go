package native

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.llib.dev/algebrakit/pkg/algebra"
)

// CaseFold is a leaf mark for case-insensitive string instances.
type CaseFold struct{}

// Concat is the string concatenation monoid.
type Concat[M any] struct{}

var _ algebra.Monoid[string, algebra.Root] = Concat[algebra.Root]{}

func (Concat[M]) Mark() (m M) { return m }

func (Concat[M]) BinOp(a, b string) string { return a + b }

func (Concat[M]) NullOp() string { return "" }

// FoldEq is case-insensitive string equality, as strings.EqualFold.
//
//	var exact algebra.Equivalence[string, algebra.Root] = native.Eq[string, algebra.Root]{}
//	var folded algebra.Equivalence[string, native.CaseFold] = native.FoldEq[native.CaseFold]{}
type FoldEq[M any] struct{}

var _ algebra.HashEquivalence[string, CaseFold] = FoldEq[CaseFold]{}

func (FoldEq[M]) Mark() (m algebra.Equative[M]) { return m }

func (FoldEq[M]) BinOp(a, b string) bool { return strings.EqualFold(a, b) }

func (FoldEq[M]) UnOp(s string) int {
	var (
		buf = make([]byte, 0, len(s))
		enc [utf8.UTFMax]byte
	)
	for _, r := range s {
		n := utf8.EncodeRune(enc[:], foldRune(r))
		buf = append(buf, enc[:n]...)
	}
	return hashBytes(buf)
}

// foldRune maps every rune of a case folding orbit to the smallest rune of the orbit.
func foldRune(r rune) rune {
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < least {
			least = f
		}
	}
	return least
}
