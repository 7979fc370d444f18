// SPDX-License-Identifier: MIT
// Package ga: sentinel error set.
// Operations wrap these with their name via fmt.Errorf("Op: %w", err);
// callers match with errors.Is.

package ga

import "errors"

var (
	// ErrMetricShape is returned when metric input is empty, ragged or not a perfect square.
	ErrMetricShape = errors.New("ga: invalid metric shape")

	// ErrMetricAsymmetric is returned when ‖Mᵀ − M‖∞ ≥ 1e-6.
	ErrMetricAsymmetric = errors.New("ga: metric matrix must be symmetric")

	// ErrMetricEigen is returned when the eigen-decomposition of a metric fails.
	ErrMetricEigen = errors.New("ga: metric eigen decomposition failed")

	// ErrNotInvertible is returned by VersorInverse when A·~A is zero.
	ErrNotInvertible = errors.New("ga: non-invertible multivector")

	// ErrZeroNorm is returned by Unit on a zero-norm multivector.
	ErrZeroNorm = errors.New("ga: zero norm")

	// ErrSymbolicNonScalarSquare is returned by Exp, Sin and Cos when a symbolic
	// multivector does not square to a scalar of determinable sign.
	ErrSymbolicNonScalarSquare = errors.New("ga: symbolic multivector with non-scalar square")

	// ErrInconsistentSquare is returned by RandomSquareSign when the trials disagree
	// or a trial leaves a non-scalar remainder.
	ErrInconsistentSquare = errors.New("ga: square did not evaluate to a consistent scalar")

	// ErrUnboundSymbol is returned when evaluation meets a symbol without a value.
	ErrUnboundSymbol = errors.New("ga: unbound symbol")

	// ErrZeroBlade is returned by LangString on a zero blade.
	ErrZeroBlade = errors.New("ga: zero basis blade")

	// ErrNonUnitScale is returned by LangString when the scale is not ±1.
	ErrNonUnitScale = errors.New("ga: basis blade scale is not +1 or -1")

	// ErrUnknownInnerProduct is returned for InnerProductType values outside the enumeration.
	ErrUnknownInnerProduct = errors.New("ga: unknown inner product type")

	// ErrDomain is returned when a scalar operation is evaluated outside its domain
	// (division by zero, square root of a negative value, logarithm of a value <= 0).
	ErrDomain = errors.New("ga: argument outside operation domain")

	// ErrNonScalarOperand is returned when a scalar operation's operand does not
	// evaluate to a scalar.
	ErrNonScalarOperand = errors.New("ga: operand is not scalar")

	// ErrUnknownOp is returned when evaluating an operation tag with no implementation.
	ErrUnknownOp = errors.New("ga: unknown scalar operation")

	// ErrSymbolicNorm is returned by grade-part queries that need a numeric norm
	// of a blade with a symbolic scale.
	ErrSymbolicNorm = errors.New("ga: cannot determine norm of symbolic scalars")

	// ErrDimension is returned when an operation needs the space dimension and
	// the space does not declare one.
	ErrDimension = errors.New("ga: space has no dimension")
)
