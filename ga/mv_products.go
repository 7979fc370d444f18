// SPDX-License-Identifier: MIT

package ga

import "fmt"

// bilinear distributes f over every pair of blades and simplifies the result.
func (a Multivector) bilinear(b Multivector, f func(x, y BasisBlade) []BasisBlade) Multivector {
	if len(a.blades) == 0 || len(b.blades) == 0 {
		return Multivector{}
	}
	list := make([]BasisBlade, 0, len(a.blades)*len(b.blades))
	for _, x := range a.blades {
		for _, y := range b.blades {
			list = append(list, f(x, y)...)
		}
	}

	return Multivector{blades: Simplify(list)}
}

func spaceOrEuclidean(sp Space) Space {
	if sp == nil {
		return Euclidean(0)
	}

	return sp
}

// OuterProduct returns a∧b.
func (a Multivector) OuterProduct(b Multivector) Multivector {
	return a.bilinear(b, func(x, y BasisBlade) []BasisBlade {
		return nonZero(x.OuterProduct(y))
	})
}

// GeometricProduct returns ab in sp. A nil sp is Euclidean.
func (a Multivector) GeometricProduct(b Multivector, sp Space) Multivector {
	return a.bilinear(b, spaceOrEuclidean(sp).product)
}

// GeometricProductDiag returns ab in the diagonal metric m.
func (a Multivector) GeometricProductDiag(b Multivector, m []float64) Multivector {
	return a.GeometricProduct(b, Diagonal(m))
}

// GeometricProductMetric returns ab in the metric m.
func (a Multivector) GeometricProductMetric(b Multivector, m *Metric) Multivector {
	return a.GeometricProduct(b, m)
}

// InnerProduct returns the inner product of type t in sp.
//
// Errors: ErrUnknownInnerProduct for t outside the enumeration.
func (a Multivector) InnerProduct(b Multivector, sp Space, t InnerProductType) (Multivector, error) {
	if err := t.validate(); err != nil {
		return Multivector{}, fmt.Errorf("InnerProduct: %w", err)
	}
	sp = spaceOrEuclidean(sp)

	return a.bilinear(b, func(x, y BasisBlade) []BasisBlade {
		gx, gy := x.Grade(), y.Grade()
		var out []BasisBlade
		for _, r := range sp.product(x, y) {
			if f := innerProductFilter(gx, gy, r, t); f.scale != 0 {
				out = append(out, f)
			}
		}
		return out
	}), nil
}

// InnerProductDiag returns the inner product of type t in the diagonal metric m.
func (a Multivector) InnerProductDiag(b Multivector, m []float64, t InnerProductType) (Multivector, error) {
	return a.InnerProduct(b, Diagonal(m), t)
}

// InnerProductMetric returns the inner product of type t in the metric m.
func (a Multivector) InnerProductMetric(b Multivector, m *Metric, t InnerProductType) (Multivector, error) {
	return a.InnerProduct(b, m, t)
}

// LeftContraction returns a⌋b in sp.
func (a Multivector) LeftContraction(b Multivector, sp Space) Multivector {
	r, _ := a.InnerProduct(b, sp, LeftContraction)

	return r
}

// RightContraction returns a⌊b in sp.
func (a Multivector) RightContraction(b Multivector, sp Space) Multivector {
	r, _ := a.InnerProduct(b, sp, RightContraction)

	return r
}

// ScalarProduct returns the scalar product a*b in sp.
func (a Multivector) ScalarProduct(b Multivector, sp Space) Multivector {
	r, _ := a.InnerProduct(b, sp, ScalarProduct)

	return r.ScalarPart()
}

// HadamardProduct multiplies the coefficients of matching blades.
func (a Multivector) HadamardProduct(b Multivector) Multivector {
	return a.bilinear(b, func(x, y BasisBlade) []BasisBlade {
		return nonZero(x.HadamardProduct(y))
	})
}

// InverseHadamardProduct divides the coefficients of a by the matching
// coefficients of b. Blades of a without a match in b vanish.
func (a Multivector) InverseHadamardProduct(b Multivector) Multivector {
	return a.bilinear(b, func(x, y BasisBlade) []BasisBlade {
		return nonZero(x.InverseHadamardProduct(y))
	})
}
