// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels used by the
// geometric algebra metric layer.
//
// What & Why:
//
//	A non-diagonal metric is reduced to a diagonal one by an orthogonal change
//	of basis. That needs a symmetric eigensolver, an inverse for the
//	eigenvector matrix and a handful of structural predicates (symmetry,
//	diagonality, infinity norm). This package supplies exactly those on a
//	row-major Dense type behind the Matrix interface.
//
// Kernels:
//
//   - Transpose, Sub, Mul, Scale         elementwise and product kernels
//   - NormInf                            maximum absolute row sum
//   - IsSymmetric, IsDiagonal            structural predicates within eps
//   - LU, Inverse                        partial-pivot Doolittle factorization
//   - Eigen                              cyclic Jacobi rotations (symmetric input)
//
// Errors:
//
//	Every kernel validates its inputs and returns package sentinels wrapped
//	with the operation name ("Inverse: matrix: singular matrix"). Match them
//	with errors.Is.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1). Mul, LU, Inverse are O(n³). Eigen is
//	O(sweeps·n³).
package matrix
