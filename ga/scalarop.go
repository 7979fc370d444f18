// SPDX-License-Identifier: MIT

package ga

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// OpKind names a scalar operation. The value is also its rendered name.
type OpKind string

// Unary operations.
const (
	OpInverse OpKind = "inverse"
	OpSqrt    OpKind = "sqrt"
	OpExp     OpKind = "exp"
	OpLog     OpKind = "log"
	OpSin     OpKind = "sin"
	OpCos     OpKind = "cos"
	OpTan     OpKind = "tan"
	OpSinh    OpKind = "sinh"
	OpCosh    OpKind = "cosh"
	OpTanh    OpKind = "tanh"
	OpAbs     OpKind = "abs"
)

// Binary operations.
const (
	OpAtan2 OpKind = "atan2"
)

// UnaryOp is a scalar function applied to the scalar part of a multivector.
// Only the scalar part of the operand is retained at construction.
type UnaryOp struct {
	Op  OpKind
	Arg Multivector
}

// BinaryOp is a scalar function of two scalar operands.
type BinaryOp struct {
	Op       OpKind
	Lhs, Rhs Multivector
}

// NewUnaryOp builds op(scalar part of a).
func NewUnaryOp(op OpKind, a Multivector) *UnaryOp {
	return &UnaryOp{Op: op, Arg: a.ScalarPart()}
}

// NewBinaryOp builds op(scalar part of a, scalar part of b).
func NewBinaryOp(op OpKind, a, b Multivector) *BinaryOp {
	return &BinaryOp{Op: op, Lhs: a.ScalarPart(), Rhs: b.ScalarPart()}
}

func (*UnaryOp) kind() factorKind  { return kindUnary }
func (*BinaryOp) kind() factorKind { return kindBinary }

// scalarOf wraps a factor into the scalar multivector 1·f.
func scalarOf(f Factor) Multivector {
	return FromBlade(NewSymbolicBlade(0, 1, Sum{{f}}))
}

// InverseOf returns the scalar multivector inverse(a).
func InverseOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpInverse, a)) }

// SqrtOf returns the scalar multivector sqrt(a).
func SqrtOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpSqrt, a)) }

// ExpOf returns the scalar multivector exp(a).
func ExpOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpExp, a)) }

// LogOf returns the scalar multivector log(a).
func LogOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpLog, a)) }

// SinOf returns the scalar multivector sin(a).
func SinOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpSin, a)) }

// CosOf returns the scalar multivector cos(a).
func CosOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpCos, a)) }

// TanOf returns the scalar multivector tan(a).
func TanOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpTan, a)) }

// SinhOf returns the scalar multivector sinh(a).
func SinhOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpSinh, a)) }

// CoshOf returns the scalar multivector cosh(a).
func CoshOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpCosh, a)) }

// TanhOf returns the scalar multivector tanh(a).
func TanhOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpTanh, a)) }

// AbsOf returns the scalar multivector abs(a).
func AbsOf(a Multivector) Multivector { return scalarOf(NewUnaryOp(OpAbs, a)) }

// Atan2Of returns the scalar multivector atan2(y, x).
func Atan2Of(y, x Multivector) Multivector { return scalarOf(NewBinaryOp(OpAtan2, y, x)) }

// evalOperand evaluates a and requires the result to be a plain scalar.
func evalOperand(op OpKind, a Multivector, b Bindings) (float64, error) {
	v, err := a.Eval(b)
	if err != nil {
		return 0, err
	}
	if !v.IsScalar() {
		return 0, fmt.Errorf("%s: %w", op, ErrNonScalarOperand)
	}

	return v.RealScalarPart(), nil
}

// Eval evaluates the operand under b and applies the operation.
//
// Errors:
//   - ErrDomain for inverse(0), sqrt of a negative value, log of a value <= 0.
//   - ErrNonScalarOperand when the operand does not evaluate to a scalar.
//   - ErrUnknownOp for an Op outside the unary set.
//   - any error of the operand evaluation (e.g. ErrUnboundSymbol).
func (u *UnaryOp) Eval(b Bindings) (float64, error) {
	v, err := evalOperand(u.Op, u.Arg, b)
	if err != nil {
		return 0, err
	}
	switch u.Op {
	case OpInverse:
		if v == 0 {
			return 0, fmt.Errorf("%s: divide by zero: %w", u.Op, ErrDomain)
		}
		return 1 / v, nil
	case OpSqrt:
		if v < 0 {
			return 0, fmt.Errorf("%s(%g): %w", u.Op, v, ErrDomain)
		}
		return math.Sqrt(v), nil
	case OpExp:
		return math.Exp(v), nil
	case OpLog:
		if v <= 0 {
			return 0, fmt.Errorf("%s(%g): %w", u.Op, v, ErrDomain)
		}
		return math.Log(v), nil
	case OpSin:
		return math.Sin(v), nil
	case OpCos:
		return math.Cos(v), nil
	case OpTan:
		return math.Tan(v), nil
	case OpSinh:
		return math.Sinh(v), nil
	case OpCosh:
		return math.Cosh(v), nil
	case OpTanh:
		return math.Tanh(v), nil
	case OpAbs:
		return math.Abs(v), nil
	}

	return 0, fmt.Errorf("%s: %w", u.Op, ErrUnknownOp)
}

// Eval evaluates both operands under b and applies the operation.
func (o *BinaryOp) Eval(b Bindings) (float64, error) {
	y, err := evalOperand(o.Op, o.Lhs, b)
	if err != nil {
		return 0, err
	}
	x, err := evalOperand(o.Op, o.Rhs, b)
	if err != nil {
		return 0, err
	}
	if o.Op == OpAtan2 {
		return math.Atan2(y, x), nil
	}

	return 0, fmt.Errorf("%s: %w", o.Op, ErrUnknownOp)
}

// String renders "op(arg)"; an operand that already starts with '(' is not
// wrapped twice.
func (u *UnaryOp) String() string {
	v := u.Arg.String()
	if strings.HasPrefix(v, "(") {
		return string(u.Op) + v
	}

	return string(u.Op) + "(" + v + ")"
}

// String renders "op(lhs, rhs)".
func (o *BinaryOp) String() string {
	return string(o.Op) + "(" + o.Lhs.String() + ", " + o.Rhs.String() + ")"
}

// compareScalarMultivector is the exact order over operands: every blade is
// compared, literal factors included.
func compareScalarMultivector(a, b Multivector) int {
	for i := 0; i < len(a.blades) && i < len(b.blades); i++ {
		x, y := a.blades[i], b.blades[i]
		if c := x.Compare(y); c != 0 {
			return c
		}
		if c := compareSumsExact(x.sym, y.sym); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.blades), len(b.blades))
}

func (u *UnaryOp) compare(o *UnaryOp) int {
	if c := strings.Compare(string(u.Op), string(o.Op)); c != 0 {
		return c
	}

	return compareScalarMultivector(u.Arg, o.Arg)
}

func (o *BinaryOp) compare(p *BinaryOp) int {
	if c := strings.Compare(string(o.Op), string(p.Op)); c != 0 {
		return c
	}
	if c := compareScalarMultivector(o.Lhs, p.Lhs); c != 0 {
		return c
	}

	return compareScalarMultivector(o.Rhs, p.Rhs)
}

// round snaps the operand; ok reports whether anything changed.
func (u *UnaryOp) round(eps float64) (*UnaryOp, bool) {
	a, changed := u.Arg.round(eps)
	if !changed {
		return u, false
	}

	return &UnaryOp{Op: u.Op, Arg: a}, true
}

func (o *BinaryOp) round(eps float64) (*BinaryOp, bool) {
	l, cl := o.Lhs.round(eps)
	r, cr := o.Rhs.round(eps)
	if !cl && !cr {
		return o, false
	}

	return &BinaryOp{Op: o.Op, Lhs: l, Rhs: r}, true
}
