// SPDX-License-Identifier: MIT
// Package spec: sentinel error set.
// Loaders and parsers wrap these with the offending input;
// callers match with errors.Is.

package spec

import "errors"

var (
	// ErrInvalidSpec is returned when a document fails structural validation.
	ErrInvalidSpec = errors.New("spec: invalid specification")

	// ErrMetricSyntax is returned for a malformed metric statement.
	ErrMetricSyntax = errors.New("spec: malformed metric statement")

	// ErrUnknownBasisVector is returned when a name is not a basis vector.
	ErrUnknownBasisVector = errors.New("spec: unknown basis vector")

	// ErrRepeatedBasisVector is returned when a blade names a basis vector twice.
	ErrRepeatedBasisVector = errors.New("spec: basis vector repeated in blade")

	// ErrUnknownMetric is returned when a metric name is not defined.
	ErrUnknownMetric = errors.New("spec: unknown metric")

	// ErrExpressionSyntax is returned for a malformed blade or multivector expression.
	ErrExpressionSyntax = errors.New("spec: malformed expression")
)
