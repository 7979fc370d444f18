// SPDX-License-Identifier: MIT

package ga

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"

	"github.com/Sciumo/gaigen-sub003/bits"
)

// BasisBlade is scale·sym·e_{i1}∧…∧e_{ik}, where bit i of bitmap marks e_{i+1}.
//
// The value is immutable. Constructors normalize the symbolic part:
//   - the sum is simplified; an empty result forces scale 0;
//   - a single-term sum gives its literal coefficient to scale, and a sum that
//     reduces to one literal disappears entirely;
//   - a zero scale drops the symbolic part.
//
// The zero value is the numeric scalar 0.
type BasisBlade struct {
	bitmap uint32
	scale  float64
	sym    Sum
}

// NewBlade returns the numeric blade scale·e[bitmap].
func NewBlade(bitmap uint32, scale float64) BasisBlade {
	return BasisBlade{bitmap: bitmap, scale: scale}
}

// NewSymbolicBlade returns the blade scale·sym·e[bitmap] in normalized form.
// A nil sym yields the numeric blade.
func NewSymbolicBlade(bitmap uint32, scale float64, sym Sum) BasisBlade {
	if sym == nil || scale == 0 {
		return BasisBlade{bitmap: bitmap, scale: scale}
	}
	s := SimplifySymbolicScalars(sym)
	if s == nil {
		return BasisBlade{bitmap: bitmap}
	}
	if len(s) == 1 {
		t := s[0]
		if l, ok := t[0].(Literal); ok {
			scale *= float64(l)
			if len(t) == 1 || scale == 0 {
				return BasisBlade{bitmap: bitmap, scale: scale}
			}
			s = Sum{t[1:]}
		}
	}

	return BasisBlade{bitmap: bitmap, scale: scale, sym: s}
}

// NewFactorBlade returns scale·f·e[bitmap].
func NewFactorBlade(bitmap uint32, scale float64, f Factor) BasisBlade {
	return NewSymbolicBlade(bitmap, scale, Sum{{f}})
}

// Bitmap returns the set of basis vectors spanned by b.
func (b BasisBlade) Bitmap() uint32 { return b.bitmap }

// Scale returns the numeric coefficient.
func (b BasisBlade) Scale() float64 { return b.scale }

// Sym returns the symbolic coefficient (nil when numeric). The slice is shared
// with b and must not be modified.
func (b BasisBlade) Sym() Sum { return b.sym }

// IsSymbolic reports whether b carries a symbolic coefficient.
func (b BasisBlade) IsSymbolic() bool { return len(b.sym) > 0 }

// Grade is the number of basis vectors in the blade.
func (b BasisBlade) Grade() int { return bits.BitCount(b.bitmap) }

func (b BasisBlade) withScale(s float64) BasisBlade {
	return BasisBlade{bitmap: b.bitmap, scale: s, sym: b.sym}
}

// Negate returns -b.
func (b BasisBlade) Negate() BasisBlade { return b.withScale(-b.scale) }

// Reverse returns ~b: the sign (-1)^(g(g-1)/2).
func (b BasisBlade) Reverse() BasisBlade {
	g := b.Grade()
	if (g*(g-1)/2)&1 == 0 {
		return b
	}

	return b.Negate()
}

// GradeInvolution returns the sign (-1)^g applied to b.
func (b BasisBlade) GradeInvolution() BasisBlade {
	if b.Grade()&1 == 0 {
		return b
	}

	return b.Negate()
}

// GradeInversion is GradeInvolution.
func (b BasisBlade) GradeInversion() BasisBlade { return b.GradeInvolution() }

// CliffordConjugate returns the sign (-1)^(g(g+1)/2) applied to b.
func (b BasisBlade) CliffordConjugate() BasisBlade {
	g := b.Grade()
	if (g*(g+1)/2)&1 == 0 {
		return b
	}

	return b.Negate()
}

// Compare orders blades by grade, then bitmap, then scale.
func (b BasisBlade) Compare(o BasisBlade) int {
	if c := cmp.Compare(b.Grade(), o.Grade()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.bitmap, o.bitmap); c != 0 {
		return c
	}

	return cmp.Compare(b.scale, o.scale)
}

// SymbolicCompare extends Compare with the symbolic coefficients, compared
// term by term (ignoring term literals) and then by term count.
func (b BasisBlade) SymbolicCompare(o BasisBlade) int {
	if c := b.Compare(o); c != 0 {
		return c
	}

	return compareSums(b.sym, o.sym)
}

// Equal reports exact structural equality.
func (b BasisBlade) Equal(o BasisBlade) bool {
	return b.bitmap == o.bitmap && b.scale == o.scale && b.sym.Equal(o.sym)
}

// Hash returns an FNV-1a digest of bitmap, scale and symbolic structure.
// Equal blades hash equally.
func (b BasisBlade) Hash() uint64 {
	h := fnv.New64a()
	b.writeHash(h)

	return h.Sum64()
}

func (b BasisBlade) writeHash(h hash.Hash64) {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[:4], b.bitmap)
	binary.LittleEndian.PutUint64(buf[4:], math.Float64bits(b.scale))
	h.Write(buf[:])
	b.sym.writeHash(h)
}

// roundNear snaps v to the nearest integer when closer than eps.
func roundNear(v, eps float64) float64 {
	r := math.Round(v)
	if math.Abs(r-v) < eps {
		return r
	}

	return v
}

// roundTerm snaps the leading literal and the operands of nested operations.
func roundTerm(t Term, eps float64) (Term, bool) {
	var out Term
	for i, f := range t {
		var nf Factor = f
		switch x := f.(type) {
		case Literal:
			if i == 0 {
				if r := Literal(roundNear(float64(x), eps)); r != x {
					nf = r
				}
			}
		case *UnaryOp:
			if r, ok := x.round(eps); ok {
				nf = r
			}
		case *BinaryOp:
			if r, ok := x.round(eps); ok {
				nf = r
			}
		}
		if nf != f && out == nil {
			out = append(Term(nil), t...)
		}
		if out != nil {
			out[i] = nf
		}
	}
	if out == nil {
		return t, false
	}

	return out, true
}

func (b BasisBlade) round(eps float64) (BasisBlade, bool) {
	scale := roundNear(b.scale, eps)
	changed := scale != b.scale
	var sym Sum
	for i, t := range b.sym {
		nt, ok := roundTerm(t, eps)
		if ok && sym == nil {
			sym = append(Sum(nil), b.sym...)
		}
		if sym != nil {
			sym[i] = nt
		}
	}
	switch {
	case sym != nil:
		return NewSymbolicBlade(b.bitmap, scale, sym), true
	case changed:
		return NewSymbolicBlade(b.bitmap, scale, b.sym), true
	}

	return b, false
}

// Round snaps the scale, the leading literal of every term and, recursively,
// the operands of scalar operations to the nearest integer when they lie
// within eps of it. The receiver is returned when nothing changes.
func (b BasisBlade) Round(eps float64) BasisBlade {
	r, _ := b.round(eps)

	return r
}

func evalFactor(f Factor, bnd Bindings) (float64, error) {
	switch x := f.(type) {
	case Literal:
		return float64(x), nil
	case Symbol:
		return bnd.Value(x)
	case *UnaryOp:
		return x.Eval(bnd)
	case *BinaryOp:
		return x.Eval(bnd)
	}

	return 0, fmt.Errorf("eval %T: %w", f, ErrUnknownOp)
}

// Eval substitutes symbol values from bnd and evaluates scalar operations,
// returning a numeric blade. Numeric blades are returned unchanged.
func (b BasisBlade) Eval(bnd Bindings) (BasisBlade, error) {
	if b.sym == nil {
		return b, nil
	}
	total := 0.0
	for _, t := range b.sym {
		p := 1.0
		for _, f := range t {
			v, err := evalFactor(f, bnd)
			if err != nil {
				return BasisBlade{}, err
			}
			p *= v
		}
		total += p
	}

	return NewBlade(b.bitmap, b.scale*total), nil
}
