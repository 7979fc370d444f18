package ga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sciumo/gaigen-sub003/ga"
)

// requireNear fails unless want and got differ by less than tol in Euclidean norm.
func requireNear(t *testing.T, want, got ga.Multivector, tol float64) {
	t.Helper()
	d := want.Sub(got).NormE().RealScalarPart()
	require.Less(t, d, tol, "want %s, got %s", want, got)
}

// rotorBivector squares to -5/4 in Euclidean space.
func rotorBivector() ga.Multivector {
	return blade(5, -1).Add(blade(6, 0.5))
}

func TestExp_NegativeSquare(t *testing.T) {
	b := rotorBivector()
	r, err := b.Exp(ga.Euclidean(3))
	require.NoError(t, err)
	require.False(t, r.HasSymbolicScalars())

	alpha := math.Sqrt(1.25)
	k := math.Sin(alpha) / alpha
	bl := r.Blades()
	require.Len(t, bl, 3)
	assert.InDelta(t, math.Cos(alpha), bl[0].Scale(), 1e-12)
	assert.InDelta(t, -k, bl[1].Scale(), 1e-12)
	assert.InDelta(t, 0.5*k, bl[2].Scale(), 1e-12)
	assert.InDelta(t, 0.437451, bl[0].Scale(), 1e-6)

	requireNear(t, b.ExpSeries(ga.Euclidean(3), ga.DefaultSeriesOrder), r, 1e-9)

	// a rotor has unit reverse norm
	assert.InDelta(t, 1, r.NormR(nil).RealScalarPart(), 1e-12)
}

func TestExp_PositiveSquare(t *testing.T) {
	r, err := e(0).Exp(nil)
	require.NoError(t, err)
	requireNear(t, ga.Scalar(math.Cosh(1)).Add(blade(1, math.Sinh(1))), r, 1e-15)
	requireNear(t, e(0).ExpSeries(nil, 20), r, 1e-9)
}

func TestExp_NullSquare(t *testing.T) {
	r, err := e(0).Exp(ga.Diagonal{0})
	require.NoError(t, err)
	require.True(t, r.Equal(ga.Scalar(1).Add(e(0))))

	s, err := e(0).Sin(ga.Diagonal{0})
	require.NoError(t, err)
	require.True(t, s.Equal(e(0)))

	c, err := e(0).Cos(ga.Diagonal{0})
	require.NoError(t, err)
	require.True(t, c.Equal(ga.Scalar(1)))
}

func TestExp_SeriesFallback(t *testing.T) {
	// (e1 + e2^e3)² = 2·e1^e2^e3 is not a scalar
	a := e(0).Add(blade(6, 1))
	r, err := a.Exp(ga.Euclidean(3))
	require.NoError(t, err)
	require.True(t, r.Equal(a.ExpSeries(ga.Euclidean(3), ga.DefaultSeriesOrder)))

	r, err = a.Exp(ga.Euclidean(3), ga.WithSeriesOrder(4))
	require.NoError(t, err)
	require.True(t, r.Equal(a.ExpSeries(ga.Euclidean(3), 4)))

	s, err := a.Sin(ga.Euclidean(3))
	require.NoError(t, err)
	require.True(t, s.Equal(a.SinSeries(ga.Euclidean(3), ga.DefaultSeriesOrder)))
}

func TestSinCos_ClosedFormsMatchSeries(t *testing.T) {
	cases := []struct {
		name string
		a    ga.Multivector
		sp   ga.Space
	}{
		{"bivector", rotorBivector(), ga.Euclidean(3)},
		{"vector", blade(1, 0.7), ga.Euclidean(1)},
		{"anti-euclidean vector", blade(1, 1.3), ga.Diagonal{-1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.a.Sin(tc.sp)
			require.NoError(t, err)
			requireNear(t, tc.a.SinSeries(tc.sp, 30), s, 1e-9)

			c, err := tc.a.Cos(tc.sp)
			require.NoError(t, err)
			requireNear(t, tc.a.CosSeries(tc.sp, 30), c, 1e-9)

			x, err := tc.a.Exp(tc.sp)
			require.NoError(t, err)
			requireNear(t, tc.a.ExpSeries(tc.sp, 30), x, 1e-9)
		})
	}
}

func TestSin_PositiveSquare(t *testing.T) {
	s, err := e(0).Sin(nil)
	require.NoError(t, err)
	requireNear(t, blade(1, math.Sin(1)), s, 1e-15)

	c, err := e(0).Cos(nil)
	require.NoError(t, err)
	requireNear(t, ga.Scalar(math.Cos(1)), c, 1e-15)
}

func TestExp_Symbolic(t *testing.T) {
	a := sym("a", 3)
	r, err := a.Exp(ga.Euclidean(2))
	require.NoError(t, err)
	require.True(t, r.HasSymbolicScalars())
	require.Contains(t, r.String(), "cos(sqrt(a*a))")

	v, err := r.Eval(ga.MapBindings{"a": 0.5})
	require.NoError(t, err)
	requireNear(t, ga.Scalar(math.Cos(0.5)).Add(blade(3, math.Sin(0.5))), v, 1e-12)

	hinted, err := a.Exp(ga.Euclidean(2), ga.WithSquareHint(-1))
	require.NoError(t, err)
	require.True(t, hinted.Equal(r))
}

func TestExp_SymbolicNonScalarSquare(t *testing.T) {
	a := sym("a", 1).Add(sym("b", 6))

	_, err := a.Exp(ga.Euclidean(3))
	require.ErrorIs(t, err, ga.ErrSymbolicNonScalarSquare)
	_, err = a.Sin(ga.Euclidean(3))
	require.ErrorIs(t, err, ga.ErrSymbolicNonScalarSquare)
	_, err = a.Cos(ga.Euclidean(3))
	require.ErrorIs(t, err, ga.ErrSymbolicNonScalarSquare)
}

func TestExp_WrongHint(t *testing.T) {
	// e1² = +1, so claiming a negative square takes sqrt(-1)
	_, err := e(0).Exp(nil, ga.WithSquareHint(-1))
	require.ErrorIs(t, err, ga.ErrDomain)
}

func TestExpSeries_ZeroAndScalar(t *testing.T) {
	require.True(t, ga.Multivector{}.ExpSeries(nil, ga.DefaultSeriesOrder).Equal(ga.Scalar(1)))
	requireNear(t, ga.Scalar(math.E), ga.Scalar(1).ExpSeries(nil, 20), 1e-12)
	requireNear(t, ga.Scalar(math.Exp(3)), ga.Scalar(3).ExpSeries(nil, 20), 1e-9)
}

func TestCos_NumericSquareEpsilon(t *testing.T) {
	// (e1 + 1e-4·e2^e3)² = 1 - 1e-8 + 2e-4·e1^e2^e3
	a := e(0).Add(blade(6, 1e-4))

	series, err := a.Cos(ga.Euclidean(3))
	require.NoError(t, err)
	require.False(t, series.IsScalar(), "remainder 2e-4 exceeds the default tolerance")

	closed, err := a.Cos(ga.Euclidean(3), ga.WithNumericSquareEpsilon(1e-3))
	require.NoError(t, err)
	require.True(t, closed.IsScalar())
	assert.InDelta(t, math.Cos(1), closed.RealScalarPart(), 1e-7)
}
