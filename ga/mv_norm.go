// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"math"
)

// VersorInverse returns ~a / (a*~a) in sp.
//
// A symbolic denominator becomes the factor inverse(a*~a); no check is made
// that it can be nonzero.
//
// Errors: ErrNotInvertible when a*~a is zero.
func (a Multivector) VersorInverse(sp Space) (Multivector, error) {
	sp = spaceOrEuclidean(sp)
	r := a.Reverse()
	s := a.ScalarProduct(r, sp)
	if s.IsZero() {
		return Multivector{}, fmt.Errorf("VersorInverse: %w", ErrNotInvertible)
	}
	if !s.HasSymbolicScalars() {
		return r.ScaleBy(1 / s.RealScalarPart()), nil
	}

	return r.GeometricProduct(InverseOf(s), sp), nil
}

// Dual returns a⌋I⁻¹ for the pseudoscalar I of sp. In a Euclidean space I⁻¹
// is ~I; otherwise it is the versor inverse of I in sp.
//
// Errors:
//   - ErrDimension when sp declares no dimension.
//   - ErrNotInvertible when the pseudoscalar is null (degenerate metric).
func (a Multivector) Dual(sp Space) (Multivector, error) {
	sp = spaceOrEuclidean(sp)
	n := sp.Dimension()
	if n <= 0 {
		return Multivector{}, fmt.Errorf("Dual: %w", ErrDimension)
	}
	i := Pseudoscalar(n)
	var inv Multivector
	if _, ok := sp.(Euclidean); ok {
		inv = i.Reverse()
	} else {
		var err error
		if inv, err = i.VersorInverse(sp); err != nil {
			return Multivector{}, fmt.Errorf("Dual: %w", err)
		}
	}

	return a.LeftContraction(inv, sp), nil
}

// Undual returns a⌋I for the pseudoscalar I of sp.
//
// Errors: ErrDimension when sp declares no dimension.
func (a Multivector) Undual(sp Space) (Multivector, error) {
	sp = spaceOrEuclidean(sp)
	n := sp.Dimension()
	if n <= 0 {
		return Multivector{}, fmt.Errorf("Undual: %w", ErrDimension)
	}

	return a.LeftContraction(Pseudoscalar(n), sp), nil
}

// norm takes the signed square root of a squared norm.
//
// Numeric input gives sign(s)·sqrt(|s|). Symbolic input gives sqrt(s) when
// positiveDefinite, sqrt(abs(s)) otherwise; the sign of a symbolic square is
// not tracked.
func norm(n2 Multivector, positiveDefinite bool) Multivector {
	if n2.IsZero() {
		return Multivector{}
	}
	if !n2.HasSymbolicScalars() {
		s := n2.RealScalarPart()
		if s < 0 {
			return Scalar(-math.Sqrt(-s))
		}
		return Scalar(math.Sqrt(s))
	}
	if !positiveDefinite {
		n2 = AbsOf(n2)
	}

	return SqrtOf(n2)
}

// NormE2 returns the squared Euclidean norm a*~a.
func (a Multivector) NormE2() Multivector {
	return a.ScalarProduct(a.Reverse(), Euclidean(0))
}

// NormE returns the Euclidean norm.
func (a Multivector) NormE() Multivector { return norm(a.NormE2(), true) }

// NormR2 returns the squared reverse norm a*~a in sp.
func (a Multivector) NormR2(sp Space) Multivector {
	return a.ScalarProduct(a.Reverse(), sp)
}

// NormR returns the reverse norm in sp. In a space that is not positive
// definite the numeric result carries the sign of a*~a.
func (a Multivector) NormR(sp Space) Multivector {
	sp = spaceOrEuclidean(sp)

	return norm(a.NormR2(sp), sp.IsPositiveDefinite())
}

// unit divides a by the norm n.
func (a Multivector) unit(n Multivector, op string) (Multivector, error) {
	if n.IsZero() {
		return Multivector{}, fmt.Errorf("%s: %w", op, ErrZeroNorm)
	}
	if a.IsScalar() {
		return Scalar(1), nil
	}
	if !n.HasSymbolicScalars() {
		return a.ScaleBy(1 / n.RealScalarPart()), nil
	}

	return a.GeometricProduct(InverseOf(n), Euclidean(0)), nil
}

// UnitE returns a divided by its Euclidean norm. A nonzero scalar gives 1.
//
// Errors: ErrZeroNorm.
func (a Multivector) UnitE() (Multivector, error) { return a.unit(a.NormE(), "UnitE") }

// UnitR returns a divided by its reverse norm in sp. A nonzero scalar gives 1.
//
// Errors: ErrZeroNorm.
func (a Multivector) UnitR(sp Space) (Multivector, error) {
	return a.unit(a.NormR(sp), "UnitR")
}
