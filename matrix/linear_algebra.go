// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over the Matrix interface.
//
// Purpose:
//   - Elementwise and product kernels (Add, Sub, Scale, Mul, Transpose).
//   - Structural predicates and norms used by metric classification.
//   - Factorizations used to change basis (LU, Inverse, Eigen).
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; inputs are never mutated.
//   - Non-Dense inputs are copied once through asDense, then the flat path runs.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution loops and norms.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opNormInf    = "NormInf"
	opSymmetrize = "Symmetrize"
	opEigen      = "Eigen"
	opInverse    = "Inverse"
	opLU         = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i := range res.data {
		res.data[i] = da.data[i] + sign*db.data[i]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for i, v := range d.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var av float64
	for i := 0; i < da.r; i++ {
		for k := 0; k < da.c; k++ {
			av = da.data[i*da.c+k]
			if av == 0 {
				continue // skip zero
			}
			rowB := db.data[k*db.c : (k+1)*db.c]
			rowR := res.data[i*db.c : (i+1)*db.c]
			for j, bv := range rowB {
				rowR[j] += av * bv
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// NormInf returns the infinity norm: the maximum absolute row sum.
// Errors: ErrNilMatrix.
func NormInf(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	best := ZeroSum
	for i := 0; i < d.r; i++ {
		sum := ZeroSum
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			sum += math.Abs(v)
		}
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// IsSymmetric reports whether ‖mᵀ − m‖∞ < eps (DefaultEpsilon unless overridden).
// A non-square or nil matrix is never symmetric.
func IsSymmetric(m Matrix, opts ...Option) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	o := gatherOptions(opts...)
	t, err := Transpose(m)
	if err != nil {
		return false
	}
	diff, err := Sub(t, m)
	if err != nil {
		return false
	}
	n, err := NormInf(diff)
	if err != nil {
		return false
	}

	return n < o.eps
}

// IsDiagonal reports whether every off-diagonal entry is within eps of zero.
func IsDiagonal(m Matrix, opts ...Option) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return false
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if i != j && math.Abs(d.data[i*d.c+j]) > o.eps {
				return false
			}
		}
	}

	return true
}

// Symmetrize returns (m + mᵀ)/2. Jacobi assumes exact symmetry, so callers
// that accepted m within a tolerance pass the symmetrized copy to Eigen.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	t, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, t)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return Scale(sum, 0.5)
}

// LU computes the partial-pivot Doolittle factorization P·A = L·U.
//
// Implementation:
//   - Stage 1: validate square input; copy it into the working U.
//   - Stage 2: for each column k pick the row with the largest |U[i,k]|, i ≥ k,
//     swap it into place (recording perm), then eliminate below the pivot and
//     store the multipliers in L.
//
// Returns:
//   - L (unit lower triangular), U (upper triangular), perm where row i of P·A
//     is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (whole pivot column is zero).
//
// Determinism:
//   - Ties between equal pivot magnitudes keep the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, *Dense, []int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	n := src.r
	u := src.Clone().(*Dense)
	l, err := Identity(n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// pivot search
		p, best := k, math.Abs(u.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(u.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			swapRows(u, p, k, 0, n)
			swapRows(l, p, k, 0, k) // only the computed multipliers move
			perm[p], perm[k] = perm[k], perm[p]
		}
		// eliminate
		pivot := u.data[k*n+k]
		for i := k + 1; i < n; i++ {
			f := u.data[i*n+k] / pivot
			l.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				u.data[i*n+j] -= f * u.data[k*n+j]
			}
		}
	}

	return l, u, perm, nil
}

// swapRows exchanges columns [from,to) of rows a and b.
func swapRows(m *Dense, a, b, from, to int) {
	for j := from; j < to; j++ {
		m.data[a*m.c+j], m.data[b*m.c+j] = m.data[b*m.c+j], m.data[a*m.c+j]
	}
}

// Inverse computes A⁻¹ by solving L·U·x = P·e_col for every column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	l, u, perm, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := l.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	y := make([]float64, n)
	x := make([]float64, n)
	var sum float64
	for col := 0; col < n; col++ {
		// forward: L*y = P*e_col
		for i := 0; i < n; i++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			rhs := 0.0
			if perm[i] == col {
				rhs = 1.0
			}
			y[i] = rhs - sum
		}
		// backward: U*x = y
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k := i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			pivot := u.data[i*n+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate symmetric square input within tol.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply the rotation that annihilates it, accumulating rotations into Q.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, in pivot order).
//   - *Dense: Q whose columns are the matching orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrMatrixEigenFailed.
//
// Notes:
//   - An already diagonal input returns its diagonal and the identity with no
//     rotations, so orthogonal metrics keep their basis order.
//
// Complexity:
//   - Time O(maxIter·n), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.Clone().(*Dense)
	q, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		p, r           int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		theta, t, c, s float64
		qip, qiq       float64
		newIP, newIQ   float64
		converged      bool
	)
	for iter := 0; iter < maxIter; iter++ {
		maxOff = ZeroSum
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[r*n+r]
		apq = a.data[p*n+r]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+r]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+r] = s*qip + c*qiq
		}
	}
	if !converged {
		// the last rotation may have finished the job
		maxOff = ZeroSum
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				maxOff = math.Max(maxOff, math.Abs(a.data[i*n+j]))
			}
		}
		if maxOff >= tol {
			return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
		}
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// EigenSymmetric runs Eigen with the package defaults on the symmetrized copy
// of m, after checking symmetry within the structural epsilon.
//
// Errors:
//   - ErrAsymmetry when ‖mᵀ − m‖∞ ≥ eps; otherwise as Eigen.
func EigenSymmetric(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if !IsSymmetric(m, opts...) {
		return nil, nil, matrixErrorf(opEigen, ErrAsymmetry)
	}
	o := gatherOptions(opts...)
	sym, err := Symmetrize(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := sym.r

	return Eigen(sym, DefaultEigenTolerance, o.sweeps*n*n)
}
