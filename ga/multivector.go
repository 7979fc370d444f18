// SPDX-License-Identifier: MIT

package ga

import (
	"cmp"
	"fmt"
	"hash"
	"hash/fnv"
	"math"

	"github.com/Sciumo/gaigen-sub003/bits"
)

// Multivector is a sum of basis blades in canonical form: sorted by grade
// and bitmap, at most one blade per bitmap, no zero blades.
// The zero value is the zero multivector. Values are immutable.
type Multivector struct {
	blades []BasisBlade
}

// NewMultivector returns the canonical sum of the given blades.
func NewMultivector(blades ...BasisBlade) Multivector {
	return Multivector{blades: Simplify(blades)}
}

// FromBlade wraps a single blade; a zero blade gives the zero multivector.
func FromBlade(b BasisBlade) Multivector {
	if b.scale == 0 {
		return Multivector{}
	}

	return Multivector{blades: []BasisBlade{b}}
}

// Scalar returns the numeric scalar x.
func Scalar(x float64) Multivector { return FromBlade(NewBlade(0, x)) }

// NewSymbol returns the scalar multivector holding the symbol name.
func NewSymbol(name string) Multivector {
	return FromBlade(NewFactorBlade(0, 1, Symbol(name)))
}

// BasisVector returns e_{idx+1}.
func BasisVector(idx int) Multivector { return FromBlade(NewBlade(1<<uint(idx), 1)) }

// Pseudoscalar returns e1∧…∧en; 1 for n <= 0.
func Pseudoscalar(n int) Multivector { return FromBlade(NewBlade(bits.Full(n), 1)) }

// Blades returns a copy of the canonical blade list.
func (a Multivector) Blades() []BasisBlade { return append([]BasisBlade(nil), a.blades...) }

// Len returns the number of blades.
func (a Multivector) Len() int { return len(a.blades) }

// IsZero reports whether a has no blades.
func (a Multivector) IsZero() bool { return len(a.blades) == 0 }

// IsScalar reports whether every blade of a is grade 0. Zero is a scalar.
func (a Multivector) IsScalar() bool {
	for _, b := range a.blades {
		if b.bitmap != 0 {
			return false
		}
	}

	return true
}

// HasSymbolicScalars reports whether some blade has a symbolic coefficient.
func (a Multivector) HasSymbolicScalars() bool {
	for _, b := range a.blades {
		if b.IsSymbolic() {
			return true
		}
	}

	return false
}

// ScalarPart returns the grade-0 part, symbolic coefficient included.
func (a Multivector) ScalarPart() Multivector {
	if len(a.blades) > 0 && a.blades[0].bitmap == 0 {
		return Multivector{blades: a.blades[:1:1]}
	}

	return Multivector{}
}

// RealScalarPart returns the numeric scale of the grade-0 blade (0 if absent).
// A symbolic coefficient is ignored.
func (a Multivector) RealScalarPart() float64 {
	if len(a.blades) > 0 && a.blades[0].bitmap == 0 {
		return a.blades[0].scale
	}

	return 0
}

func (a Multivector) mapBlades(f func(BasisBlade) BasisBlade) Multivector {
	if len(a.blades) == 0 {
		return a
	}
	out := make([]BasisBlade, len(a.blades))
	for i, b := range a.blades {
		out[i] = f(b)
	}

	return Multivector{blades: out}
}

// Negate returns -a.
func (a Multivector) Negate() Multivector { return a.mapBlades(BasisBlade.Negate) }

// Reverse returns ~a.
func (a Multivector) Reverse() Multivector { return a.mapBlades(BasisBlade.Reverse) }

// GradeInvolution returns â.
func (a Multivector) GradeInvolution() Multivector { return a.mapBlades(BasisBlade.GradeInvolution) }

// GradeInversion is GradeInvolution.
func (a Multivector) GradeInversion() Multivector { return a.GradeInvolution() }

// CliffordConjugate returns the Clifford conjugate of a.
func (a Multivector) CliffordConjugate() Multivector {
	return a.mapBlades(BasisBlade.CliffordConjugate)
}

// ScaleBy returns x·a.
func (a Multivector) ScaleBy(x float64) Multivector {
	switch x {
	case 1:
		return a
	case 0:
		return Multivector{}
	}

	return a.mapBlades(func(b BasisBlade) BasisBlade { return b.withScale(b.scale * x) })
}

// Add returns a + b.
func (a Multivector) Add(b Multivector) Multivector {
	switch {
	case len(b.blades) == 0:
		return a
	case len(a.blades) == 0:
		return b
	}
	list := make([]BasisBlade, 0, len(a.blades)+len(b.blades))
	list = append(list, a.blades...)

	return Multivector{blades: Simplify(append(list, b.blades...))}
}

// Sub returns a - b.
func (a Multivector) Sub(b Multivector) Multivector { return a.Add(b.Negate()) }

// AddScalar returns a + x without re-sorting: the scalar blade is updated,
// removed when it cancels, or prepended.
func (a Multivector) AddScalar(x float64) Multivector {
	if x == 0 {
		return a
	}
	if len(a.blades) == 0 || a.blades[0].bitmap != 0 {
		out := make([]BasisBlade, 0, len(a.blades)+1)
		out = append(out, NewBlade(0, x))
		return Multivector{blades: append(out, a.blades...)}
	}
	s := a.blades[0]
	if s.IsSymbolic() {
		return a.Add(Scalar(x))
	}
	if s.scale == -x {
		return Multivector{blades: append([]BasisBlade(nil), a.blades[1:]...)}
	}
	out := append([]BasisBlade(nil), a.blades...)
	out[0] = NewBlade(0, s.scale+x)

	return Multivector{blades: out}
}

// SubScalar returns a - x.
func (a Multivector) SubScalar(x float64) Multivector { return a.AddScalar(-x) }

// GradeUsage returns a bitmap with bit g set when a has a grade-g blade.
func (a Multivector) GradeUsage() int {
	u := 0
	for _, b := range a.blades {
		u |= 1 << uint(b.Grade())
	}

	return u
}

// Grade returns the grade of a homogeneous multivector, -1 for mixed grades
// and 0 for the zero multivector.
func (a Multivector) Grade() int {
	g := -1
	for _, b := range a.blades {
		switch bg := b.Grade(); {
		case g < 0:
			g = bg
		case g != bg:
			return -1
		}
	}
	if g < 0 {
		return 0
	}

	return g
}

// GradeBitmapToArray lists the grades set in a GradeUsage bitmap, ascending.
func GradeBitmapToArray(bitmap int) []int {
	return bits.Indices(uint32(bitmap))
}

// ExtractGrade returns the part of a with the listed grades.
// Negative grades are ignored.
func (a Multivector) ExtractGrade(grades ...int) Multivector {
	mask := 0
	for _, g := range grades {
		if g >= 0 && g < 64 {
			mask |= 1 << uint(g)
		}
	}
	if mask&a.GradeUsage() == a.GradeUsage() {
		return a
	}
	var out []BasisBlade
	for _, b := range a.blades {
		if mask&(1<<uint(b.Grade())) != 0 {
			out = append(out, b)
		}
	}

	return Multivector{blades: out}
}

// gradeNorms visits the grade parts of a with their squared Euclidean norm,
// from the lowest grade up, or from the highest grade down when reverse is set.
func (a Multivector) gradeNorms(reverse bool, visit func(grade int, norm2 float64) bool) error {
	n := len(a.blades)
	for k := 0; k < n; {
		i := k
		if reverse {
			i = n - 1 - k
		}
		g := a.blades[i].Grade()
		norm2 := 0.0
		for k < n {
			j := k
			if reverse {
				j = n - 1 - k
			}
			b := a.blades[j]
			if b.Grade() != g {
				break
			}
			if b.IsSymbolic() {
				return ErrSymbolicNorm
			}
			norm2 += b.scale * b.scale
			k++
		}
		if !visit(g, norm2) {
			return nil
		}
	}

	return nil
}

// LargestGradePartIndex returns the grade whose part has the largest
// Euclidean norm, -1 for the zero multivector.
//
// Errors: ErrSymbolicNorm when a coefficient is symbolic.
func (a Multivector) LargestGradePartIndex() (int, error) {
	best, bestNorm := -1, 0.0
	err := a.gradeNorms(false, func(g int, n2 float64) bool {
		if n2 > bestNorm {
			best, bestNorm = g, n2
		}
		return true
	})
	if err != nil {
		return -1, fmt.Errorf("LargestGradePartIndex: %w", err)
	}

	return best, nil
}

// TopGradePartIndex returns the highest grade present, -1 for zero.
func (a Multivector) TopGradePartIndex() int {
	if len(a.blades) == 0 {
		return -1
	}

	return a.blades[len(a.blades)-1].Grade()
}

// TopGradePartIndexEps returns the highest grade whose part has a Euclidean
// norm above eps, -1 when there is none.
//
// Errors: ErrSymbolicNorm when a coefficient inspected is symbolic.
func (a Multivector) TopGradePartIndexEps(eps float64) (int, error) {
	top := -1
	err := a.gradeNorms(true, func(g int, n2 float64) bool {
		if n2 > eps*eps {
			top = g
			return false
		}
		return true
	})
	if err != nil {
		return -1, fmt.Errorf("TopGradePartIndexEps: %w", err)
	}

	return top, nil
}

// Eval substitutes symbol values from bnd and returns the numeric result.
func (a Multivector) Eval(bnd Bindings) (Multivector, error) {
	if !a.HasSymbolicScalars() {
		return a, nil
	}
	list := make([]BasisBlade, len(a.blades))
	for i, b := range a.blades {
		e, err := b.Eval(bnd)
		if err != nil {
			return Multivector{}, err
		}
		list[i] = e
	}

	return NewMultivector(list...), nil
}

// Compress drops blades with |scale| <= eps (DefaultCompressEpsilon when eps <= 0).
func (a Multivector) Compress(eps float64) Multivector {
	if eps <= 0 {
		eps = DefaultCompressEpsilon
	}
	var out []BasisBlade
	for _, b := range a.blades {
		if math.Abs(b.scale) > eps {
			out = append(out, b)
		}
	}
	if len(out) == len(a.blades) {
		return a
	}

	return Multivector{blades: out}
}

func (a Multivector) round(eps float64) (Multivector, bool) {
	var out []BasisBlade
	for i, b := range a.blades {
		r, ok := b.round(eps)
		if ok && out == nil {
			out = append(make([]BasisBlade, 0, len(a.blades)), a.blades[:i]...)
		}
		if out != nil && r.scale != 0 {
			out = append(out, r)
		}
	}
	if out == nil {
		return a, false
	}

	return Multivector{blades: out}, true
}

// Round snaps coefficients within eps of an integer (see BasisBlade.Round)
// and drops blades that round to zero. a is returned when nothing changes.
func (a Multivector) Round(eps float64) Multivector {
	r, _ := a.round(eps)

	return r
}

// Compare is a total order: blade by blade with SymbolicCompare, then by length.
func (a Multivector) Compare(b Multivector) int {
	for i := 0; i < len(a.blades) && i < len(b.blades); i++ {
		if c := a.blades[i].SymbolicCompare(b.blades[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.blades), len(b.blades))
}

// Equal reports exact structural equality.
func (a Multivector) Equal(b Multivector) bool {
	if len(a.blades) != len(b.blades) {
		return false
	}
	for i := range a.blades {
		if !a.blades[i].Equal(b.blades[i]) {
			return false
		}
	}

	return true
}

// Hash returns an FNV-1a digest of the blades; equal multivectors hash equally.
func (a Multivector) Hash() uint64 {
	h := fnv.New64a()
	a.writeHash(h)

	return h.Sum64()
}

func (a Multivector) writeHash(h hash.Hash64) {
	h.Write([]byte{'{'})
	for _, b := range a.blades {
		b.writeHash(h)
	}
	h.Write([]byte{'}'})
}

// String renders a with the default basis names.
func (a Multivector) String() string { return FormatBlades(a.blades, nil) }

// Render renders a with the given basis names.
func (a Multivector) Render(names []string) string { return FormatBlades(a.blades, names) }
