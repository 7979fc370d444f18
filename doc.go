// SPDX-License-Identifier: MIT

// Package gaigen is a symbolic geometric algebra kernel: basis blades with
// numeric or symbolic coefficients, multivectors, and their products in
// Euclidean, diagonal and arbitrary symmetric metrics.
//
// What is in here?
//
//	bits/      bitmap helpers: popcount, lowest/highest one bit, set-bit iteration
//	matrix/    dense matrices, LU inverse and Jacobi eigen-decomposition for metrics
//	ga/        BasisBlade, symbolic scalars, Metric, Multivector, norms, Exp/Sin/Cos
//	spec/      YAML algebra specifications: basis names, "no.ni=-1" metric statements,
//	           blade and multivector expression parsing
//	cmd/gasym/ command-line calculator over spec and ga
//
// Quick example, the conformal origin and infinity:
//
//	a, _ := spec.Load("c3ga.yaml")
//	sp, _ := a.Space("default")
//	no, _ := a.ParseMultivector("no")
//	ni, _ := a.ParseMultivector("ni")
//	no.GeometricProduct(ni, sp) // -1 + no^ni
//
// Symbolic coefficients stay symbolic through every product; Eval with a
// Bindings value turns them into numbers.
//
//	go get github.com/Sciumo/gaigen-sub003
package gaigen
