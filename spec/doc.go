// SPDX-License-Identifier: MIT

// Package spec loads algebra specifications: the dimension, the basis vector
// names and the named metrics of a geometric algebra, and turns them into
// ga values.
//
// What & Why:
//
//	A specification is a small YAML document. Metrics are written as
//	statements over basis vector names, e.g. "no.ni=-1" or
//	"e1.e1=e2.e2=e3.e3=1"; pairs that are not mentioned are zero.
//	Loading validates the document, builds one ga.Metric per metric and
//	rounds the eigenvalues of non-diagonal metrics so that values such as
//	0.9999999999999998 become 1.
//
// Document layout:
//
//	name: c3ga
//	dimension: 5
//	basis: [no, e1, e2, e3, ni]
//	metrics:
//	  default: ["no.ni=-1", "e1.e1=e2.e2=e3.e3=1"]
//	  conformal:
//	    statements: ["no.ni=-1", "e1.e1=e2.e2=e3.e3=1"]
//	    round: false
//
// A metric named "default" is always present (Euclidean when not given), and
// the name "euclidean" always resolves to a Euclidean metric. Metric names
// are case-insensitive.
//
// Expressions:
//
//	ParseBlade reads "e2^e1" into a signed unit blade. ParseMultivector reads
//	sums such as "a1*e1 + 2*e1^e2 - b*no", where each term is a product of
//	numbers, symbol names and at most one blade.
//
// Errors:
//
//	Sentinels live in errors.go and are wrapped with the failing input.
package spec
