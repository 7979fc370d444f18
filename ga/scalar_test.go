package ga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sciumo/gaigen-sub003/ga"
)

func TestSimplifySymbolicScalars(t *testing.T) {
	sqrtY := ga.NewUnaryOp(ga.OpSqrt, ga.NewSymbol("y"))

	cases := []struct {
		name string
		in   ga.Sum
		want string
	}{
		{"literals fold", ga.Sum{{ga.Symbol("b"), ga.Literal(2), ga.Symbol("a"), ga.Literal(3)}}, "6*a*b"},
		{"operations before symbols", ga.Sum{{ga.Symbol("x"), sqrtY}}, "sqrt(y)*x"},
		{"literal terms merge", ga.Sum{{ga.Literal(2)}, {ga.Literal(3)}}, "5"},
		{"unit coefficient dropped", ga.Sum{{ga.Literal(1), ga.Symbol("x")}}, "x"},
		{"zero term dropped", ga.Sum{{ga.Literal(0), ga.Symbol("x")}, {ga.Symbol("y")}}, "y"},
		{"terms sorted", ga.Sum{{ga.Symbol("z")}, {ga.Literal(-1), ga.Symbol("a")}}, "-a+z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ga.SimplifySymbolicScalars(tc.in).String())
		})
	}

	require.Nil(t, ga.SimplifySymbolicScalars(nil))
	require.Nil(t, ga.SimplifySymbolicScalars(ga.Sum{{ga.Symbol("x")}, {ga.Literal(-1), ga.Symbol("x")}}))
}

func TestSum_MulAdd(t *testing.T) {
	a, b, c := ga.Symbol("a"), ga.Symbol("b"), ga.Symbol("c")
	s := ga.Sum{{a}, {b}}

	require.Nil(t, ga.Sum(nil).Mul(nil))
	require.True(t, ga.Sum(nil).Mul(s).Equal(s))
	require.True(t, s.Mul(nil).Equal(s))
	require.True(t, s.Mul(ga.Sum{{c}}).Equal(ga.Sum{{a, c}, {b, c}}))

	require.Nil(t, ga.Sum(nil).Add(nil))
	require.True(t, s.Add(ga.Sum{{c}}).Equal(ga.Sum{{a}, {b}, {c}}))
	require.Len(t, s, 2, "operands must not be modified")
}

func TestSum_String(t *testing.T) {
	s := ga.Sum{{ga.Symbol("a")}, {ga.Literal(-1), ga.Symbol("b")}, {ga.Literal(-2.5)}}
	require.Equal(t, "a-b-2.5", s.String())
	require.Equal(t, "a*b", ga.Term{ga.Symbol("a"), ga.Symbol("b")}.String())
	require.Equal(t, "0.001", ga.Literal(0.001).String())
}

func TestUnaryOp_Eval(t *testing.T) {
	cases := []struct {
		name string
		mv   ga.Multivector
		want float64
	}{
		{"inverse", ga.InverseOf(ga.Scalar(4)), 0.25},
		{"sqrt", ga.SqrtOf(ga.Scalar(9)), 3},
		{"exp", ga.ExpOf(ga.Scalar(0)), 1},
		{"log", ga.LogOf(ga.Scalar(math.E)), 1},
		{"sin", ga.SinOf(ga.Scalar(0)), 0},
		{"cos", ga.CosOf(ga.Scalar(0)), 1},
		{"tan", ga.TanOf(ga.Scalar(0)), 0},
		{"sinh", ga.SinhOf(ga.Scalar(0)), 0},
		{"cosh", ga.CoshOf(ga.Scalar(0)), 1},
		{"tanh", ga.TanhOf(ga.Scalar(0)), 0},
		{"abs", ga.AbsOf(ga.Scalar(-2)), 2},
		{"atan2", ga.Atan2Of(ga.Scalar(1), ga.Scalar(1)), math.Pi / 4},
		{"symbol", ga.SqrtOf(ga.NewSymbol("x")), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.mv.Eval(ga.MapBindings{"x": 16})
			require.NoError(t, err)
			require.True(t, v.IsScalar())
			require.InDelta(t, tc.want, v.RealScalarPart(), 1e-15)
		})
	}
}

func TestUnaryOp_EvalErrors(t *testing.T) {
	_, err := ga.InverseOf(ga.Scalar(0)).Eval(ga.MapBindings{})
	require.ErrorIs(t, err, ga.ErrDomain)

	_, err = ga.SqrtOf(ga.Scalar(-1)).Eval(ga.MapBindings{})
	require.ErrorIs(t, err, ga.ErrDomain)

	_, err = ga.LogOf(ga.Scalar(0)).Eval(ga.MapBindings{})
	require.ErrorIs(t, err, ga.ErrDomain)

	_, err = ga.SqrtOf(ga.NewSymbol("q")).Eval(ga.MapBindings{})
	require.ErrorIs(t, err, ga.ErrUnboundSymbol)

	op := &ga.UnaryOp{Op: ga.OpSqrt, Arg: ga.BasisVector(0)}
	_, err = op.Eval(ga.MapBindings{})
	require.ErrorIs(t, err, ga.ErrNonScalarOperand)

	unknown := &ga.UnaryOp{Op: ga.OpKind("erf"), Arg: ga.Scalar(1)}
	_, err = unknown.Eval(ga.MapBindings{})
	require.ErrorIs(t, err, ga.ErrUnknownOp)
}

func TestScalarOps_String(t *testing.T) {
	sum := ga.NewSymbol("a").Add(ga.NewSymbol("b"))
	require.Equal(t, "sqrt(a+b)", ga.SqrtOf(sum).String())
	require.Equal(t, "abs(a)", ga.AbsOf(ga.NewSymbol("a")).String())
	require.Equal(t, "atan2(y, x)", ga.Atan2Of(ga.NewSymbol("y"), ga.NewSymbol("x")).String())

	// only the scalar part of the operand is kept
	mixed := ga.NewSymbol("a").Add(ga.BasisVector(0))
	require.Equal(t, "cos(a)", ga.CosOf(mixed).String())
}

func TestUnaryOp_OperandLiteralsKeepTermsApart(t *testing.T) {
	x, y := ga.NewSymbol("x"), ga.NewSymbol("y")
	a := ga.SinOf(x.Add(y.ScaleBy(2)))
	b := ga.SinOf(x.Add(y.ScaleBy(3)))

	require.False(t, a.Equal(b))
	require.NotZero(t, a.Compare(b))
	require.Equal(t, "2*sin(x+2*y)", a.Add(a).String())

	sum := a.Add(b)
	v, err := sum.Eval(ga.MapBindings{"x": 0.3, "y": 0.7})
	require.NoError(t, err)
	require.InDelta(t, math.Sin(1.7)+math.Sin(2.4), v.RealScalarPart(), 1e-12)

	// a matching operand still cancels
	require.True(t, sum.Sub(b).Sub(a).IsZero())
}

func TestBinaryOp_OperandLiteralsKeepTermsApart(t *testing.T) {
	x, y := ga.NewSymbol("x"), ga.NewSymbol("y")
	a := ga.Atan2Of(y.ScaleBy(2), x)
	b := ga.Atan2Of(y.ScaleBy(5), x)

	v, err := a.Add(b).Eval(ga.MapBindings{"x": 1, "y": 0.25})
	require.NoError(t, err)
	require.InDelta(t, math.Atan2(0.5, 1)+math.Atan2(1.25, 1), v.RealScalarPart(), 1e-12)
}
