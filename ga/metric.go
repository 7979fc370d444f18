// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Sciumo/gaigen-sub003/bits"
	"github.com/Sciumo/gaigen-sub003/matrix"
)

// Metric is a symmetric bilinear form on the basis vectors, stored with its
// eigen-decomposition. Products are computed in the orthogonal eigenbasis,
// where the metric is diagonal, and transformed back.
//
// A Metric is immutable apart from its product cache and is safe for
// concurrent use.
type Metric struct {
	rows     [][]float64 // metric entries, rows[i][j] = e_{i+1}·e_{j+1}
	eigen    []float64   // eigenvalues: the diagonal metric of the eigenbasis
	toMetric [][]float64 // V, column j = eigenvector j in metric coordinates
	toEigen  [][]float64 // V⁻¹, column i = e_{i+1} in eigen coordinates

	diagonal      bool
	euclidean     bool
	antiEuclidean bool

	logger *slog.Logger
	memo   *productMemo
}

// NewMetric builds a metric from its n×n matrix.
//
// Errors:
//   - ErrMetricShape when the input is empty, ragged, non-square or holds NaN/Inf.
//   - ErrMetricAsymmetric when ‖Mᵀ − M‖∞ ≥ 1e-6.
//   - ErrMetricEigen when the eigen-decomposition or its inverse fails, or when
//     V·diag(λ)·V⁻¹ misses the input by more than decompositionTolerance.
//
// Options: WithLogger.
func NewMetric(rows [][]float64, opts ...Option) (*Metric, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewMetric: empty matrix: %w", ErrMetricShape)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("NewMetric: row %d has %d entries, want %d: %w", i, len(r), n, ErrMetricShape)
		}
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("NewMetric: %w: %w", ErrMetricShape, err)
	}
	if !matrix.IsSymmetric(d) {
		return nil, fmt.Errorf("NewMetric: %w", ErrMetricAsymmetric)
	}
	eig, v, err := matrix.EigenSymmetric(d)
	if err != nil {
		return nil, fmt.Errorf("NewMetric: %w: %w", ErrMetricEigen, err)
	}
	inv, err := matrix.Inverse(v)
	if err != nil {
		return nil, fmt.Errorf("NewMetric: %w: %w", ErrMetricEigen, err)
	}
	if err := checkDecomposition(d, eig, v, inv); err != nil {
		return nil, fmt.Errorf("NewMetric: %w", err)
	}

	o := gatherOptions(opts...)
	m := &Metric{
		rows:     d.ToRows(),
		eigen:    eig,
		toMetric: v.ToRows(),
		toEigen:  inv.ToRows(),
		diagonal: matrix.IsDiagonal(d),
		logger:   o.logger,
		memo:     newProductMemo(),
	}
	if m.diagonal {
		m.euclidean, m.antiEuclidean = true, true
		for i := 0; i < n; i++ {
			m.euclidean = m.euclidean && m.rows[i][i] == 1
			m.antiEuclidean = m.antiEuclidean && m.rows[i][i] == -1
		}
	}
	m.logger.Debug("metric created",
		slog.Int("dimension", n),
		slog.Bool("diagonal", m.diagonal),
		slog.Any("eigenvalues", m.eigen))

	return m, nil
}

// decompositionTolerance bounds ‖V·diag(λ)·V⁻¹ − M‖∞ relative to max(1, ‖M‖∞).
const decompositionTolerance = 1e-9

// checkDecomposition multiplies the factors back and compares with m.
func checkDecomposition(m *matrix.Dense, eig []float64, v, inv *matrix.Dense) error {
	lambda, err := matrix.Diagonal(eig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetricEigen, err)
	}
	vl, err := matrix.Mul(v, lambda)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetricEigen, err)
	}
	back, err := matrix.Mul(vl, inv)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetricEigen, err)
	}
	diff, err := matrix.Sub(back, m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetricEigen, err)
	}
	res, err := matrix.NormInf(diff)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetricEigen, err)
	}
	scale, err := matrix.NormInf(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetricEigen, err)
	}
	if res > decompositionTolerance*math.Max(1, scale) {
		return fmt.Errorf("residual %g: %w", res, ErrMetricEigen)
	}

	return nil
}

// NewMetricFlat builds a metric from its entries in row-major order.
// The length must be a perfect square.
func NewMetricFlat(entries []float64, opts ...Option) (*Metric, error) {
	n := int(math.Round(math.Sqrt(float64(len(entries)))))
	if n == 0 || n*n != len(entries) {
		return nil, fmt.Errorf("NewMetricFlat: %d entries: %w", len(entries), ErrMetricShape)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = entries[i*n : (i+1)*n]
	}

	return NewMetric(rows, opts...)
}

// Dimension returns the number of basis vectors.
func (m *Metric) Dimension() int { return len(m.rows) }

// Entry returns e_{i+1}·e_{j+1}.
func (m *Metric) Entry(i, j int) float64 { return m.rows[i][j] }

// DiagonalValue returns e_{i+1}·e_{i+1}.
func (m *Metric) DiagonalValue(i int) float64 { return m.rows[i][i] }

// Matrix returns a copy of the metric matrix.
func (m *Metric) Matrix() [][]float64 { return copyRows(m.rows) }

// EigenMetric returns a copy of the eigenvalues.
func (m *Metric) EigenMetric() []float64 { return append([]float64(nil), m.eigen...) }

// EigenVectors returns a copy of V; column j is the j-th eigenvector.
func (m *Metric) EigenVectors() [][]float64 { return copyRows(m.toMetric) }

// Signature returns the diagonal of the metric matrix.
func (m *Metric) Signature() []float64 {
	d := make([]float64, len(m.rows))
	for i := range d {
		d[i] = m.rows[i][i]
	}

	return d
}

// IsDiagonal reports whether every off-diagonal entry is within 1e-6 of zero.
func (m *Metric) IsDiagonal() bool { return m.diagonal }

// IsEuclidean reports a diagonal metric with every diagonal entry exactly +1.
func (m *Metric) IsEuclidean() bool { return m.euclidean }

// IsAntiEuclidean reports a diagonal metric with every diagonal entry exactly -1.
func (m *Metric) IsAntiEuclidean() bool { return m.antiEuclidean }

// IsDegenerate reports whether some eigenvalue is exactly zero.
func (m *Metric) IsDegenerate() bool {
	for _, e := range m.eigen {
		if e == 0 {
			return true
		}
	}

	return false
}

// IsPositiveDefinite reports whether every eigenvalue is positive.
func (m *Metric) IsPositiveDefinite() bool {
	for _, e := range m.eigen {
		if e <= 0 {
			return false
		}
	}

	return true
}

// IsSimpleDiagonal reports an exactly diagonal matrix whose diagonal holds
// only 0, +1 and -1.
func (m *Metric) IsSimpleDiagonal() bool {
	for i, r := range m.rows {
		for j, v := range r {
			if i != j && v != 0 {
				return false
			}
			if i == j && v != 0 && v != 1 && v != -1 {
				return false
			}
		}
	}

	return true
}

// HasValueOnDiagonal reports whether v occurs exactly on the diagonal.
func (m *Metric) HasValueOnDiagonal(v float64) bool {
	for i := range m.rows {
		if m.rows[i][i] == v {
			return true
		}
	}

	return false
}

// EuclideanBasisVectorBitmap returns the basis vectors with a positive square
// that are orthogonal to every other basis vector. Random versors built from
// them stay well conditioned.
func (m *Metric) EuclideanBasisVectorBitmap() uint32 {
	var bitmap uint32
	for i := range m.rows {
		ok := m.rows[i][i] > 0
		for j := range m.rows {
			if i != j && (m.rows[i][j] != 0 || m.rows[j][i] != 0) {
				ok = false
			}
		}
		if ok {
			bitmap |= 1 << uint(i)
		}
	}

	return bitmap
}

// RoundEigenMetric snaps eigenvalues within eps of an integer to that integer.
// The receiver is returned when nothing changes; otherwise a metric sharing
// the eigenvectors, with its own product cache.
func (m *Metric) RoundEigenMetric(eps float64) *Metric {
	eigen := append([]float64(nil), m.eigen...)
	changed := false
	for i, e := range eigen {
		if r := roundNear(e, eps); r != e {
			eigen[i], changed = r, true
		}
	}
	if !changed {
		return m
	}
	m.logger.Debug("eigen metric rounded", slog.Any("before", m.eigen), slog.Any("after", eigen))
	r := *m
	r.eigen = eigen
	r.memo = newProductMemo()

	return &r
}

// String renders the matrix one row per line.
func (m *Metric) String() string {
	var sb strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range r {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	return sb.String()
}

func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}

// Transform applies the change of basis m to a: basis vector i maps to
// Σ_j m[j][i]·e_j, and the images are wedged together in bitmap order.
// The symbolic coefficient of a is carried along. The result is not simplified.
func Transform(a BasisBlade, m [][]float64) []BasisBlade {
	out := []BasisBlade{{scale: a.scale, sym: a.sym}}
	for _, i := range bits.Indices(a.bitmap) {
		var next []BasisBlade
		for j := range m {
			v := m[j][i]
			if v == 0 {
				continue
			}
			e := NewBlade(1<<uint(j), v)
			for _, p := range out {
				if r := p.OuterProduct(e); r.scale != 0 {
					next = append(next, r)
				}
			}
		}
		out = next
	}

	return out
}

// ToEigenbasis expresses a in the eigenbasis of m.
func (m *Metric) ToEigenbasis(a BasisBlade) []BasisBlade {
	return Simplify(Transform(a, m.toEigen))
}

// ToEigenbasisList expresses a sum of blades in the eigenbasis of m.
func (m *Metric) ToEigenbasisList(list []BasisBlade) []BasisBlade {
	return transformList(list, m.toEigen)
}

// ToMetricBasis expresses an eigenbasis blade in the basis of m.
func (m *Metric) ToMetricBasis(a BasisBlade) []BasisBlade {
	return Simplify(Transform(a, m.toMetric))
}

// ToMetricBasisList expresses a sum of eigenbasis blades in the basis of m.
func (m *Metric) ToMetricBasisList(list []BasisBlade) []BasisBlade {
	return transformList(list, m.toMetric)
}

func transformList(list []BasisBlade, t [][]float64) []BasisBlade {
	var out []BasisBlade
	for _, a := range list {
		out = append(out, Transform(a, t)...)
	}

	return Simplify(out)
}

// productUncached computes a·b through the eigenbasis.
func (m *Metric) productUncached(a, b BasisBlade) []BasisBlade {
	ea, eb := m.ToEigenbasis(a), m.ToEigenbasis(b)
	var list []BasisBlade
	for _, x := range ea {
		for _, y := range eb {
			if c := x.GeometricProductDiag(y, m.eigen); c.scale != 0 {
				list = append(list, c)
			}
		}
	}

	return m.ToMetricBasisList(list)
}

// product computes a·b from the cached product of the unit blades.
func (m *Metric) product(a, b BasisBlade) []BasisBlade {
	scale := a.scale * b.scale
	if scale == 0 {
		return nil
	}
	unit := m.memo.get(a.bitmap, b.bitmap, func() []BasisBlade {
		return m.productUncached(NewBlade(a.bitmap, 1), NewBlade(b.bitmap, 1))
	})
	out := make([]BasisBlade, 0, len(unit))
	for _, u := range unit {
		if r := product(u.bitmap, u.scale*scale, a.sym, b.sym); r.scale != 0 {
			out = append(out, r)
		}
	}

	return out
}

// productMemo caches unit-blade products keyed by the operand bitmaps.
// Concurrent misses on the same key compute the product once.
type productMemo struct {
	mu    sync.RWMutex
	table map[[2]uint32][]BasisBlade
	group singleflight.Group
}

func newProductMemo() *productMemo {
	return &productMemo{table: make(map[[2]uint32][]BasisBlade)}
}

func (p *productMemo) get(a, b uint32, compute func() []BasisBlade) []BasisBlade {
	key := [2]uint32{a, b}
	p.mu.RLock()
	v, ok := p.table[key]
	p.mu.RUnlock()
	if ok {
		return v
	}
	res, _, _ := p.group.Do(strconv.FormatUint(uint64(a), 16)+":"+strconv.FormatUint(uint64(b), 16), func() (interface{}, error) {
		r := compute()
		p.mu.Lock()
		p.table[key] = r
		p.mu.Unlock()
		return r, nil
	})

	return res.([]BasisBlade)
}

// len reports the number of cached products.
func (p *productMemo) len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.table)
}
