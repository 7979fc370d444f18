package ga_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sciumo/gaigen-sub003/ga"
)

func TestRandomSquareSign(t *testing.T) {
	a := ga.NewSymbol("a")
	aa := a.GeometricProduct(a, nil)

	cases := []struct {
		name string
		a2   ga.Multivector
		want float64
	}{
		{"positive", aa, 1},
		{"negative", aa.Negate(), -1},
		{"zero", ga.Multivector{}, 0},
		{"cancelling", aa.Sub(aa), 0},
		{"numeric", ga.Scalar(-3), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ga.RandomSquareSign(context.Background(), tc.a2)
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
		})
	}
}

func TestRandomSquareSign_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := ga.RandomSquareSign(ctx, ga.NewSymbol("a"))
	require.ErrorIs(t, err, ga.ErrInconsistentSquare, "a has no fixed sign")

	_, err = ga.RandomSquareSign(ctx, sym("a", 1))
	require.ErrorIs(t, err, ga.ErrInconsistentSquare, "a*e1 is not a scalar")

	_, err = ga.RandomSquareSign(ctx, ga.SqrtOf(ga.NewSymbol("a")))
	require.ErrorIs(t, err, ga.ErrDomain)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ga.RandomSquareSign(cancelled, ga.NewSymbol("a").GeometricProduct(ga.NewSymbol("a"), nil))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRandomSquareSign_Options(t *testing.T) {
	x := ga.NewSymbol("x")
	xx := x.GeometricProduct(x, nil)

	// on [0.5, 1) x² never comes near zero, so every trial agrees
	s, err := ga.RandomSquareSign(context.Background(), xx.SubScalar(0.2),
		ga.WithRandomTrials(10, 10),
		ga.WithRandomRange(0.5, 1),
		ga.WithWorkers(1),
		ga.WithSeed(42),
	)
	require.NoError(t, err)
	require.Equal(t, 1.0, s)

	// the same seed gives the same verdict regardless of the pool size
	for _, workers := range []int{1, 4, 16} {
		s, err := ga.RandomSquareSign(context.Background(), xx,
			ga.WithWorkers(workers), ga.WithSeed(7), ga.WithSquareEpsilon(1e-3))
		require.NoError(t, err)
		require.Equal(t, 1.0, s)
	}

	_, err = ga.RandomSquareSign(context.Background(), xx.SubScalar(0.5),
		ga.WithRandomRange(0, 1))
	require.ErrorIs(t, err, ga.ErrInconsistentSquare)
}
