// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"log/slog"
)

type closedForm func(a Multivector, sp Space, sign float64) Multivector

type seriesForm func(a Multivector, sp Space, order int) Multivector

// transcendental picks the closed form when a² is a scalar of known sign and
// the series otherwise. Closed forms of numeric input are folded to numbers.
func (a Multivector) transcendental(op string, sp Space, opts []Option, closed closedForm, series seriesForm) (Multivector, error) {
	sp = spaceOrEuclidean(sp)
	o := gatherOptions(opts...)
	symbolic := a.HasSymbolicScalars()
	if sign, ok := a.squareSign(sp, o); ok {
		r := closed(a, sp, sign)
		if symbolic {
			return r, nil
		}
		v, err := r.Eval(MapBindings{})
		if err != nil {
			return Multivector{}, fmt.Errorf("%s: %w", op, err)
		}
		return v, nil
	}
	if symbolic {
		return Multivector{}, fmt.Errorf("%s: %w", op, ErrSymbolicNonScalarSquare)
	}
	o.logger.Debug("square is not scalar, using series",
		slog.String("op", op), slog.Int("order", o.order))

	return series(a, sp, o.order), nil
}

// Exp returns e^a in sp.
//
// Implementation:
//   - a² = 0: 1 + a.
//   - a² = -α²: cos(α) + sin(α)/α·a.
//   - a² = +α²: cosh(α) + sinh(α)/α·a.
//   - otherwise (numeric input only): ExpSeries.
//
// For symbolic input the sign of a² is found by RandomSquareSign unless
// WithSquareHint is given; α appears as sqrt(∓a²) in the result.
//
// Errors:
//   - ErrSymbolicNonScalarSquare for symbolic input without a scalar square.
//   - ErrDomain when a numeric closed form is given a wrong WithSquareHint.
func (a Multivector) Exp(sp Space, opts ...Option) (Multivector, error) {
	return a.transcendental("Exp", sp, opts, expClosed, Multivector.ExpSeries)
}

// Sin returns sin(a) in sp: a for a² = 0, sinh(α)/α·a for a² = -α²,
// sin(α)/α·a for a² = +α², SinSeries otherwise. Errors as Exp.
func (a Multivector) Sin(sp Space, opts ...Option) (Multivector, error) {
	return a.transcendental("Sin", sp, opts, sinClosed, Multivector.SinSeries)
}

// Cos returns cos(a) in sp: 1 for a² = 0, cosh(α) for a² = -α²,
// cos(α) for a² = +α², CosSeries otherwise. Errors as Exp.
//
// A nilpotent a gives 1, not a: the cosine series has only even powers
// of a and every one of them past the first vanishes.
func (a Multivector) Cos(sp Space, opts ...Option) (Multivector, error) {
	return a.transcendental("Cos", sp, opts, cosClosed, Multivector.CosSeries)
}

// rootOfSquare returns α = sqrt(∓a²) for a square of the given sign.
func rootOfSquare(a Multivector, sp Space, sign float64) Multivector {
	a2 := a.GeometricProduct(a, sp).ScalarPart()
	if sign < 0 {
		a2 = a2.Negate()
	}

	return SqrtOf(a2)
}

func expClosed(a Multivector, sp Space, sign float64) Multivector {
	if sign == 0 {
		return a.AddScalar(1)
	}
	alpha := rootOfSquare(a, sp, sign)
	even, odd := CoshOf(alpha), SinhOf(alpha)
	if sign < 0 {
		even, odd = CosOf(alpha), SinOf(alpha)
	}

	return even.Add(odd.GeometricProduct(InverseOf(alpha), sp).GeometricProduct(a, sp))
}

func sinClosed(a Multivector, sp Space, sign float64) Multivector {
	if sign == 0 {
		return a
	}
	alpha := rootOfSquare(a, sp, sign)
	odd := SinOf(alpha)
	if sign < 0 {
		odd = SinhOf(alpha)
	}

	return odd.GeometricProduct(InverseOf(alpha), sp).GeometricProduct(a, sp)
}

func cosClosed(a Multivector, sp Space, sign float64) Multivector {
	switch {
	case sign == 0:
		return Scalar(1)
	case sign < 0:
		return CoshOf(rootOfSquare(a, sp, sign))
	}

	return CosOf(rootOfSquare(a, sp, sign))
}

// ExpSeries evaluates e^a with order terms of the Taylor series, using
// scaling and squaring: a is divided by a power of two until its Euclidean
// norm is at most 1/2, and the result is squared back. Numeric input only;
// symbolic input is expanded without scaling.
func (a Multivector) ExpSeries(sp Space, order int) Multivector {
	sp = spaceOrEuclidean(sp)
	scale := 1
	if !a.HasSymbolicScalars() {
		max := a.NormE().RealScalarPart()
		if max > 1 {
			scale <<= 1
		}
		for max > 1 {
			max /= 2
			scale <<= 1
		}
	}
	scaled := a.ScaleBy(1 / float64(scale))

	result, tmp := Scalar(1), Scalar(1)
	for i := 1; i < order; i++ {
		tmp = tmp.GeometricProduct(scaled.ScaleBy(1/float64(i)), sp)
		result = result.Add(tmp)
	}
	for scale > 1 {
		result = result.GeometricProduct(result, sp)
		scale >>= 1
	}

	return result
}

// SinSeries evaluates sin(a) = a - a³/3! + a⁵/5! - … up to power order-1.
func (a Multivector) SinSeries(sp Space, order int) Multivector {
	sp = spaceOrEuclidean(sp)
	result, tmp := a, a
	sign := -1.0
	for i := 2; i < order; i++ {
		tmp = tmp.GeometricProduct(a.ScaleBy(1/float64(i)), sp)
		if i&1 == 1 {
			result = result.Add(tmp.ScaleBy(sign))
			sign = -sign
		}
	}

	return result
}

// CosSeries evaluates cos(a) = 1 - a²/2! + a⁴/4! - … up to power order-1.
func (a Multivector) CosSeries(sp Space, order int) Multivector {
	sp = spaceOrEuclidean(sp)
	result, tmp := Scalar(1), Scalar(1)
	sign := -1.0
	for i := 1; i < order; i++ {
		tmp = tmp.GeometricProduct(a.ScaleBy(1/float64(i)), sp)
		if i&1 == 0 {
			result = result.Add(tmp.ScaleBy(sign))
			sign = -sign
		}
	}

	return result
}
