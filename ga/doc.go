// SPDX-License-Identifier: MIT

// Package ga is a symbolic geometric algebra kernel.
//
// What & Why:
//
//	Code generators for geometric algebra need the coefficient formulas of
//	products, inverses and exponentials of multivectors whose coordinates are
//	variables. This package computes them: a BasisBlade carries a numeric
//	scale and an optional symbolic scale (a sum of products of literals,
//	symbols and nested scalar operations); a Multivector is a canonical sorted
//	list of blades with at most one blade per basis bitmap.
//
// Metrics:
//
//	Products are evaluated in a Space: Euclidean(n), Diagonal(signature) or a
//	general symmetric *Metric. A general metric is reduced to its orthogonal
//	eigenbasis, where the product is diagonal, and transformed back.
//
// Symbolic evaluation:
//
//	Eval substitutes symbol values from a Bindings implementation and folds
//	scalar operations (sqrt, sin, inverse, ...). RandomBindings draws values
//	on demand; RandomSquareSign uses it to decide whether a symbolic
//	multivector squares to a scalar of consistent sign, which selects the
//	closed forms of Exp, Sin and Cos.
//
// Errors:
//
//	Failing operations return sentinels from errors.go wrapped with the
//	operation name. Products never fail.
//
// Concurrency:
//
//	Blades and multivectors are immutable values. The only shared mutable
//	state is the per-Metric product cache, which is internally synchronized.
package ga
