// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"strconv"

	"github.com/Sciumo/gaigen-sub003/bits"
)

// CanonicalReorderingSign returns the sign (+1 or -1) picked up when the
// basis vectors of a∧b are sorted into canonical order, counting the swaps
// between every vector of a and the lower-indexed vectors of b.
func CanonicalReorderingSign(a, b uint32) float64 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.BitCount(a & b)
		a >>= 1
	}
	if swaps&1 == 0 {
		return 1
	}

	return -1
}

// product builds the blade with the given bitmap and scale and the product of
// the symbolic coefficients of x and y.
func product(bitmap uint32, scale float64, x, y Sum) BasisBlade {
	switch {
	case scale == 0:
		return BasisBlade{bitmap: bitmap}
	case x == nil:
		return BasisBlade{bitmap: bitmap, scale: scale, sym: y}
	case y == nil:
		return BasisBlade{bitmap: bitmap, scale: scale, sym: x}
	}

	return NewSymbolicBlade(bitmap, scale, x.Mul(y))
}

// OuterProduct returns a∧b, the zero blade when a and b share a basis vector.
func (a BasisBlade) OuterProduct(b BasisBlade) BasisBlade {
	if a.bitmap&b.bitmap != 0 {
		return BasisBlade{}
	}

	return a.GeometricProduct(b)
}

// GeometricProduct returns the Euclidean geometric product a·b.
func (a BasisBlade) GeometricProduct(b BasisBlade) BasisBlade {
	sign := CanonicalReorderingSign(a.bitmap, b.bitmap)

	return product(a.bitmap^b.bitmap, sign*a.scale*b.scale, a.sym, b.sym)
}

// GeometricProductDiag returns a·b in the diagonal metric m, where m[i] is
// e_{i+1}·e_{i+1}. m must cover every basis vector shared by a and b.
func (a BasisBlade) GeometricProductDiag(b BasisBlade, m []float64) BasisBlade {
	r := a.GeometricProduct(b)
	common := a.bitmap & b.bitmap
	if common == 0 || r.scale == 0 {
		return r
	}
	scale := r.scale
	for _, i := range bits.Indices(common) {
		scale *= m[i]
	}
	if scale == 0 {
		return BasisBlade{bitmap: r.bitmap}
	}

	return r.withScale(scale)
}

// GeometricProductMetric returns a·b in the general metric m. The result is a
// simplified list because the product of two blades is not a single blade in
// a non-orthogonal basis.
func (a BasisBlade) GeometricProductMetric(b BasisBlade, m *Metric) []BasisBlade {
	return m.product(a, b)
}

// InnerProductType selects one of the inner products derived from the
// geometric product by grade filtering.
type InnerProductType int

// Inner product kinds.
const (
	LeftContraction InnerProductType = iota
	RightContraction
	HestenesInnerProduct
	ModifiedHestenesInnerProduct
	ScalarProduct
)

// String returns the conventional name of t.
func (t InnerProductType) String() string {
	switch t {
	case LeftContraction:
		return "left contraction"
	case RightContraction:
		return "right contraction"
	case HestenesInnerProduct:
		return "Hestenes inner product"
	case ModifiedHestenesInnerProduct:
		return "modified Hestenes inner product"
	case ScalarProduct:
		return "scalar product"
	}

	return "InnerProductType(" + strconv.Itoa(int(t)) + ")"
}

func (t InnerProductType) validate() error {
	if t < LeftContraction || t > ScalarProduct {
		return fmt.Errorf("%d: %w", int(t), ErrUnknownInnerProduct)
	}

	return nil
}

// innerProductFilter keeps the part of the geometric product r of blades of
// grades ga and gb that belongs to the inner product t. t must be valid.
//
//	left contraction    ga <= gb and grade(r) = gb - ga
//	right contraction   ga >= gb and grade(r) = ga - gb
//	Hestenes            zero when either grade is 0, then as modified Hestenes
//	modified Hestenes   grade(r) = |ga - gb|
//	scalar product      grade(r) = 0
func innerProductFilter(ga, gb int, r BasisBlade, t InnerProductType) BasisBlade {
	g := r.Grade()
	keep := false
	switch t {
	case LeftContraction:
		keep = ga <= gb && g == gb-ga
	case RightContraction:
		keep = ga >= gb && g == ga-gb
	case HestenesInnerProduct:
		keep = ga != 0 && gb != 0 && g == abs(ga-gb)
	case ModifiedHestenesInnerProduct:
		keep = g == abs(ga-gb)
	case ScalarProduct:
		keep = g == 0
	}
	if !keep {
		return BasisBlade{}
	}

	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// InnerProduct returns the Euclidean inner product of type t.
//
// Errors: ErrUnknownInnerProduct for t outside the enumeration.
func (a BasisBlade) InnerProduct(b BasisBlade, t InnerProductType) (BasisBlade, error) {
	if err := t.validate(); err != nil {
		return BasisBlade{}, fmt.Errorf("InnerProduct: %w", err)
	}

	return innerProductFilter(a.Grade(), b.Grade(), a.GeometricProduct(b), t), nil
}

// InnerProductDiag returns the inner product of type t in the diagonal metric m.
func (a BasisBlade) InnerProductDiag(b BasisBlade, m []float64, t InnerProductType) (BasisBlade, error) {
	if err := t.validate(); err != nil {
		return BasisBlade{}, fmt.Errorf("InnerProductDiag: %w", err)
	}

	return innerProductFilter(a.Grade(), b.Grade(), a.GeometricProductDiag(b, m), t), nil
}

// InnerProductMetric returns the inner product of type t in the metric m,
// dropping filtered-out blades from the list.
func (a BasisBlade) InnerProductMetric(b BasisBlade, m *Metric, t InnerProductType) ([]BasisBlade, error) {
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("InnerProductMetric: %w", err)
	}
	ga, gb := a.Grade(), b.Grade()
	var out []BasisBlade
	for _, r := range m.product(a, b) {
		if f := innerProductFilter(ga, gb, r, t); f.scale != 0 {
			out = append(out, f)
		}
	}

	return out, nil
}

// ScalarProduct returns the Euclidean scalar product a*b.
func (a BasisBlade) ScalarProduct(b BasisBlade) BasisBlade {
	return innerProductFilter(a.Grade(), b.Grade(), a.GeometricProduct(b), ScalarProduct)
}

// HadamardProduct multiplies coefficients of equal basis blades; blades with
// different bitmaps give zero.
func (a BasisBlade) HadamardProduct(b BasisBlade) BasisBlade {
	if a.bitmap != b.bitmap {
		return BasisBlade{}
	}

	return product(a.bitmap, a.scale*b.scale, a.sym, b.sym)
}

// InverseHadamardProduct divides the coefficient of a by that of b when the
// bitmaps match. A symbolic divisor becomes the factor inverse(b); a numeric
// zero divisor yields a zero blade.
func (a BasisBlade) InverseHadamardProduct(b BasisBlade) BasisBlade {
	if a.bitmap != b.bitmap {
		return BasisBlade{}
	}
	if b.IsSymbolic() {
		inv := InverseOf(FromBlade(BasisBlade{scale: b.scale, sym: b.sym})).blades[0]
		return product(a.bitmap, a.scale*inv.scale, a.sym, inv.sym)
	}
	if b.scale == 0 {
		return BasisBlade{bitmap: a.bitmap}
	}

	return a.withScale(a.scale / b.scale)
}
