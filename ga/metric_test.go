package ga_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sciumo/gaigen-sub003/ga"
)

// conformalRows is the metric of the conformal model on (no, e1, e2, e3, ni).
var conformalRows = [][]float64{
	{0, 0, 0, 0, -1},
	{0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0},
	{0, 0, 0, 1, 0},
	{-1, 0, 0, 0, 0},
}

var conformalNames = []string{"no", "e1", "e2", "e3", "ni"}

type ConformalMetricSuite struct {
	suite.Suite
	m      *ga.Metric
	no, ni ga.Multivector
}

func (s *ConformalMetricSuite) SetupSuite() {
	m, err := ga.NewMetric(conformalRows)
	s.Require().NoError(err)
	s.m = m
	s.no, s.ni = ga.BasisVector(0), ga.BasisVector(4)
}

func (s *ConformalMetricSuite) TestFlags() {
	s.Equal(5, s.m.Dimension())
	s.False(s.m.IsDiagonal())
	s.False(s.m.IsEuclidean())
	s.False(s.m.IsAntiEuclidean())
	s.False(s.m.IsDegenerate())
	s.False(s.m.IsPositiveDefinite())
	s.False(s.m.IsSimpleDiagonal())
	s.True(s.m.HasValueOnDiagonal(0))
	s.False(s.m.HasValueOnDiagonal(-1))
	s.Equal([]float64{0, 1, 1, 1, 0}, s.m.Signature())
	s.Equal(uint32(14), s.m.EuclideanBasisVectorBitmap())
	s.Equal(-1.0, s.m.Entry(0, 4))
	s.Equal(conformalRows, s.m.Matrix())
	s.Equal("0 0 0 0 -1\n0 1 0 0 0\n0 0 1 0 0\n0 0 0 1 0\n-1 0 0 0 0", s.m.String())
}

func (s *ConformalMetricSuite) TestNullVectors() {
	s.True(s.no.GeometricProduct(s.no, s.m).Round(1e-10).IsZero())
	s.True(s.ni.GeometricProduct(s.ni, s.m).Round(1e-10).IsZero())
}

func (s *ConformalMetricSuite) TestOriginTimesInfinity() {
	r := s.no.GeometricProduct(s.ni, s.m).Round(1e-10)
	s.Equal("-1 + no^ni", r.Render(conformalNames))

	ip, err := s.no.InnerProduct(s.ni, s.m, ga.LeftContraction)
	s.Require().NoError(err)
	s.Equal("-1", ip.Round(1e-10).String())

	s.InDelta(-1, s.no.ScalarProduct(s.ni, s.m).RealScalarPart(), 1e-12)

	x := ga.BasisVector(1).Add(ga.BasisVector(2)).Add(ga.BasisVector(3))
	s.InDelta(3, x.ScalarProduct(x, s.m).RealScalarPart(), 1e-10)
}

func (s *ConformalMetricSuite) TestRoundEigenMetric() {
	r := s.m.RoundEigenMetric(1e-10)
	s.ElementsMatch([]float64{-1, 1, 1, 1, 1}, r.EigenMetric())
	s.Same(r, r.RoundEigenMetric(1e-10))

	// rounding keeps the products
	got := s.no.GeometricProduct(s.ni, r).Round(1e-10)
	s.True(got.Equal(s.no.GeometricProduct(s.ni, s.m).Round(1e-10)))
}

func (s *ConformalMetricSuite) TestEigenbasisRoundTrip() {
	for bitmap := uint32(0); bitmap < 32; bitmap++ {
		b := ga.NewBlade(bitmap, 2)
		back := s.m.ToMetricBasisList(s.m.ToEigenbasis(b))
		got := ga.NewMultivector(back...).Round(1e-10)
		s.True(got.Equal(ga.FromBlade(b)), "bitmap %d: got %s", bitmap, got)
	}
}

func (s *ConformalMetricSuite) TestEigenVectorsDiagonalize() {
	v := s.m.EigenVectors()
	eig := s.m.EigenMetric()
	n := len(v)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// (Vᵀ M V)[i][j]
			sum := 0.0
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					sum += v[k][i] * conformalRows[k][l] * v[l][j]
				}
			}
			want := 0.0
			if i == j {
				want = eig[i]
			}
			s.InDelta(want, sum, 1e-10, "[%d,%d]", i, j)
		}
	}
}

func (s *ConformalMetricSuite) TestConcurrentProducts() {
	fresh, err := ga.NewMetric(conformalRows)
	s.Require().NoError(err)

	blades := make([]ga.Multivector, 32)
	for i := range blades {
		blades[i] = ga.FromBlade(ga.NewBlade(uint32(i), 1))
	}
	want := make([]ga.Multivector, 32*32)
	for i, a := range blades {
		for j, b := range blades {
			want[i*32+j] = a.GeometricProduct(b, s.m)
		}
	}

	var wg sync.WaitGroup
	results := make([][]ga.Multivector, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]ga.Multivector, 32*32)
			for i, a := range blades {
				for j, b := range blades {
					out[i*32+j] = a.GeometricProduct(b, fresh)
				}
			}
			results[w] = out
		}(w)
	}
	wg.Wait()

	for w, out := range results {
		for k := range out {
			s.True(out[k].Equal(want[k]), "worker %d product %d", w, k)
		}
	}
}

func (s *ConformalMetricSuite) TestVersorInverse() {
	e1, e2 := ga.BasisVector(1), ga.BasisVector(2)
	cases := []struct {
		name string
		a    ga.Multivector
	}{
		{"no - ni", s.no.Sub(s.ni)},
		{"no + e1 - 3ni", s.no.Add(e1).Sub(s.ni.ScaleBy(3))},
		{"e1^e2 - e2^ni", e1.OuterProduct(e2).Sub(e2.OuterProduct(s.ni))},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			inv, err := tc.a.VersorInverse(s.m)
			s.Require().NoError(err)
			got := tc.a.GeometricProduct(inv, s.m).Round(1e-10)
			s.True(got.Equal(ga.Scalar(1)), "got %s", got.Render(conformalNames))
		})
	}
}

func TestConformalMetricSuite(t *testing.T) {
	suite.Run(t, new(ConformalMetricSuite))
}

func TestNewMetric_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, ga.ErrMetricShape},
		{"ragged", [][]float64{{1, 0}, {0}}, ga.ErrMetricShape},
		{"not square", [][]float64{{1, 0, 0}, {0, 1, 0}}, ga.ErrMetricShape},
		{"nan", [][]float64{{1, math.NaN()}, {math.NaN(), 1}}, ga.ErrMetricShape},
		{"asymmetric", [][]float64{{1, 2}, {0, 1}}, ga.ErrMetricAsymmetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ga.NewMetric(tc.rows)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestNewMetricFlat(t *testing.T) {
	m, err := ga.NewMetricFlat([]float64{1, 0, 0, -1})
	require.NoError(t, err)
	require.Equal(t, 2, m.Dimension())
	require.True(t, m.IsDiagonal())
	require.True(t, m.IsSimpleDiagonal())
	require.False(t, m.IsEuclidean())
	require.Equal(t, []float64{1, -1}, m.EigenMetric())

	_, err = ga.NewMetricFlat([]float64{1, 0, 0})
	require.ErrorIs(t, err, ga.ErrMetricShape)
	_, err = ga.NewMetricFlat(nil)
	require.ErrorIs(t, err, ga.ErrMetricShape)
}

func TestMetric_Flags(t *testing.T) {
	euc, err := ga.NewMetric([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.True(t, euc.IsEuclidean())
	require.True(t, euc.IsPositiveDefinite())
	require.Equal(t, uint32(3), euc.EuclideanBasisVectorBitmap())

	anti, err := ga.NewMetric([][]float64{{-1, 0}, {0, -1}})
	require.NoError(t, err)
	require.True(t, anti.IsAntiEuclidean())
	require.False(t, anti.IsEuclidean())

	deg, err := ga.NewMetric([][]float64{{1, 0}, {0, 0}})
	require.NoError(t, err)
	require.True(t, deg.IsDegenerate())
	require.Equal(t, 0.0, deg.DiagonalValue(1))

	scaled, err := ga.NewMetric([][]float64{{2, 0}, {0, 1}})
	require.NoError(t, err)
	require.False(t, scaled.IsSimpleDiagonal())
	require.True(t, scaled.HasValueOnDiagonal(2))
}

// A diagonal Metric multiplies exactly like the equivalent Diagonal space.
func TestMetric_DiagonalMatchesDiagonalSpace(t *testing.T) {
	d := ga.Diagonal{1, 1, -1}
	m, err := ga.NewMetric([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}})
	require.NoError(t, err)

	for x := uint32(0); x < 8; x++ {
		for y := uint32(0); y < 8; y++ {
			a := ga.FromBlade(ga.NewBlade(x, 2))
			b := ga.FromBlade(ga.NewBlade(y, -3))
			want := a.GeometricProduct(b, d)
			got := a.GeometricProduct(b, m)
			require.True(t, got.Equal(want), "%d*%d: want %s, got %s", x, y, want, got)
		}
	}

	dual, err := ga.BasisVector(0).Dual(m)
	require.NoError(t, err)
	require.Equal(t, "e2^e3", dual.String())
}

func TestMetric_SymbolicProduct(t *testing.T) {
	m, err := ga.NewMetric(conformalRows)
	require.NoError(t, err)

	a := sym("a", 1)
	b := sym("b", 16)
	ab := a.GeometricProduct(b, m)
	require.True(t, ab.HasSymbolicScalars())

	v, err := ab.Eval(ga.MapBindings{"a": 2, "b": 3})
	require.NoError(t, err)
	want := blade(1, 2).GeometricProduct(blade(16, 3), m)
	requireNear(t, want, v, 1e-12)
	require.Equal(t, "-6 + 6*no^ni", v.Round(1e-10).Render(conformalNames))
}

func TestTransform(t *testing.T) {
	// swap e1 and e2
	swap := [][]float64{{0, 1}, {1, 0}}
	got := ga.NewMultivector(ga.Transform(ga.NewBlade(1, 2), swap)...)
	require.True(t, got.Equal(blade(2, 2)))

	got = ga.NewMultivector(ga.Transform(ga.NewBlade(3, 1), swap)...)
	require.True(t, got.Equal(blade(3, -1)))

	got = ga.NewMultivector(ga.Transform(ga.NewFactorBlade(0, 1, ga.Symbol("s")), swap)...)
	require.Equal(t, "s", got.String())
}
