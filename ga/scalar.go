// SPDX-License-Identifier: MIT

package ga

import (
	"cmp"
	"encoding/binary"
	"hash"
	"math"
	"sort"
	"strconv"
	"strings"
)

// factorKind orders the Factor variants: literals first, then operations,
// then plain symbols.
type factorKind uint8

const (
	kindLiteral factorKind = iota
	kindBinary
	kindUnary
	kindSymbol
)

// Factor is one multiplicand of a symbolic Term.
// The set of variants is closed: Literal, Symbol, *UnaryOp and *BinaryOp.
type Factor interface {
	kind() factorKind
	String() string
}

// Literal is a numeric factor.
type Literal float64

func (Literal) kind() factorKind { return kindLiteral }

// String formats the literal in the shortest form that round-trips.
func (l Literal) String() string { return formatFloat(float64(l)) }

// Symbol is a named variable, resolved by a Bindings implementation on Eval.
type Symbol string

func (Symbol) kind() factorKind { return kindSymbol }

func (s Symbol) String() string { return string(s) }

// Term is a product of factors. An empty Term stands for 1.
type Term []Factor

// Sum is a sum of Terms. A nil Sum means "no symbolic part".
type Sum []Term

// formatFloat renders v like the rest of the package does: shortest
// representation, no trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// compareFactor is the total order over factors used to canonicalize terms.
func compareFactor(a, b Factor) int {
	ka, kb := a.kind(), b.kind()
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch x := a.(type) {
	case Literal:
		return cmp.Compare(x, b.(Literal))
	case Symbol:
		return strings.Compare(string(x), string(b.(Symbol)))
	case *UnaryOp:
		return x.compare(b.(*UnaryOp))
	case *BinaryOp:
		return x.compare(b.(*BinaryOp))
	}

	return 0
}

// leadingLiterals counts the Literal factors at the head of t.
func leadingLiterals(t Term) int {
	n := 0
	for n < len(t) {
		if _, ok := t[n].(Literal); !ok {
			break
		}
		n++
	}

	return n
}

// coefficient returns the product of the leading literals of t (1 if none).
func (t Term) coefficient() float64 {
	c := 1.0
	for _, f := range t[:leadingLiterals(t)] {
		c *= float64(f.(Literal))
	}

	return c
}

// compareTermUpToScale orders terms while ignoring their leading literals.
// Terms comparing equal differ only in their numeric coefficient.
func compareTermUpToScale(x, y Term) int {
	ix, iy := leadingLiterals(x), leadingLiterals(y)
	for ix < len(x) && iy < len(y) {
		if c := compareFactor(x[ix], y[iy]); c != 0 {
			return c
		}
		ix++
		iy++
	}

	return cmp.Compare(len(x)-ix, len(y)-iy)
}

// withCoefficient builds c*rest, omitting a unit coefficient when rest is not empty.
func withCoefficient(c float64, rest Term) Term {
	if len(rest) == 0 {
		return Term{Literal(c)}
	}
	if c == 1 {
		return append(Term(nil), rest...)
	}
	t := make(Term, 0, len(rest)+1)
	t = append(t, Literal(c))

	return append(t, rest...)
}

// normalizeTerm sorts the factors of t and multiplies its literals into a
// single leading coefficient. ok is false when the coefficient is zero.
func normalizeTerm(t Term) (Term, bool) {
	if len(t) == 0 {
		return Term{Literal(1)}, true
	}
	sorted := append(Term(nil), t...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareFactor(sorted[i], sorted[j]) < 0
	})
	n := leadingLiterals(sorted)
	if n == 0 {
		return sorted, true
	}
	c := sorted.coefficient()
	if c == 0 {
		return nil, false
	}

	return withCoefficient(c, sorted[n:]), true
}

// SimplifySymbolicScalars returns the canonical form of s:
//   - factors of every term sorted, leading literals multiplied together;
//   - terms with a zero coefficient discarded;
//   - terms equal up to their coefficient merged by summing coefficients,
//     dropping the merged term when the sum is zero.
//
// The result is nil when nothing survives. A single surviving term is returned
// as is, literal included; folding it into a blade scale is the caller's business.
func SimplifySymbolicScalars(s Sum) Sum {
	if len(s) == 0 {
		return nil
	}
	terms := make(Sum, 0, len(s))
	for _, t := range s {
		if n, ok := normalizeTerm(t); ok {
			terms = append(terms, n)
		}
	}
	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return compareTermUpToScale(terms[i], terms[j]) < 0
	})

	out := make(Sum, 0, len(terms))
	for i := 0; i < len(terms); {
		j := i + 1
		for j < len(terms) && compareTermUpToScale(terms[i], terms[j]) == 0 {
			j++
		}
		if j == i+1 {
			out = append(out, terms[i])
			i = j
			continue
		}
		c := 0.0
		for _, t := range terms[i:j] {
			c += t.coefficient()
		}
		if c != 0 {
			out = append(out, withCoefficient(c, terms[i][leadingLiterals(terms[i]):]))
		}
		i = j
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// Mul returns the distributed product s·o. An empty operand acts as 1:
// the product of two nil sums is nil, otherwise the non-empty side is returned.
func (s Sum) Mul(o Sum) Sum {
	switch {
	case len(s) == 0 && len(o) == 0:
		return nil
	case len(s) == 0:
		return o
	case len(o) == 0:
		return s
	}
	out := make(Sum, 0, len(s)*len(o))
	for _, a := range s {
		for _, b := range o {
			t := make(Term, 0, len(a)+len(b))
			t = append(t, a...)
			out = append(out, append(t, b...))
		}
	}

	return out
}

// Add concatenates the terms of s and o; the result is nil when both are empty.
func (s Sum) Add(o Sum) Sum {
	if len(s) == 0 && len(o) == 0 {
		return nil
	}
	out := make(Sum, 0, len(s)+len(o))
	out = append(out, s...)

	return append(out, o...)
}

// Equal reports exact structural equality, literal values included.
func (s Sum) Equal(o Sum) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Equal reports exact structural equality of two terms.
func (t Term) Equal(o Term) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !factorsEqual(t[i], o[i]) {
			return false
		}
	}

	return true
}

func factorsEqual(a, b Factor) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.Op == y.Op && x.Arg.Equal(y.Arg)
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.Op == y.Op && x.Lhs.Equal(y.Lhs) && x.Rhs.Equal(y.Rhs)
	}

	return false
}

// compareSums orders sums term by term (ignoring coefficients), then by length.
func compareSums(a, b Sum) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTermUpToScale(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// compareTerm orders terms factor by factor, literals included, then by length.
func compareTerm(x, y Term) int {
	for i := 0; i < len(x) && i < len(y); i++ {
		if c := compareFactor(x[i], y[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(x), len(y))
}

// compareSumsExact orders sums with compareTerm, then by length.
func compareSumsExact(a, b Sum) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTerm(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// String joins the factors with '*'.
func (t Term) String() string {
	parts := make([]string, len(t))
	for i, f := range t {
		parts[i] = f.String()
	}

	return strings.Join(parts, "*")
}

// String renders the sum without surrounding parentheses. A negative leading
// coefficient becomes a '-' separator; a unit coefficient is omitted.
func (s Sum) String() string {
	var sb strings.Builder
	for i, t := range s {
		neg, body := splitSign(t)
		switch {
		case neg:
			sb.WriteByte('-')
		case i > 0:
			sb.WriteByte('+')
		}
		sb.WriteString(body.String())
	}

	return sb.String()
}

// splitSign returns the absolute form of t and whether its coefficient was negative.
func splitSign(t Term) (bool, Term) {
	if len(t) == 0 {
		return false, Term{Literal(1)}
	}
	l, ok := t[0].(Literal)
	if !ok || l >= 0 {
		return false, t
	}
	if l == -1 && len(t) > 1 {
		return true, t[1:]
	}
	body := append(Term{-l}, t[1:]...)

	return true, body
}

// writeHash feeds the structure of s into h.
func (s Sum) writeHash(h hash.Hash64) {
	var buf [8]byte
	for _, t := range s {
		h.Write([]byte{'['})
		for _, f := range t {
			switch x := f.(type) {
			case Literal:
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(x)))
				h.Write([]byte{'l'})
				h.Write(buf[:])
			case Symbol:
				h.Write([]byte{'s'})
				h.Write([]byte(x))
			case *UnaryOp:
				h.Write([]byte{'u'})
				h.Write([]byte(x.Op))
				x.Arg.writeHash(h)
			case *BinaryOp:
				h.Write([]byte{'b'})
				h.Write([]byte(x.Op))
				x.Lhs.writeHash(h)
				x.Rhs.writeHash(h)
			}
		}
		h.Write([]byte{']'})
	}
}
