// SPDX-License-Identifier: MIT

package ga

// Space is the metric a multivector product is evaluated in.
// Implementations: Euclidean, Diagonal and *Metric.
type Space interface {
	// Dimension is the number of basis vectors; 0 when undeclared.
	Dimension() int
	// IsPositiveDefinite reports whether every basis direction squares positive.
	IsPositiveDefinite() bool

	product(a, b BasisBlade) []BasisBlade
}

// Euclidean is the identity metric on n basis vectors. Products do not
// depend on n; Dual and Undual do.
type Euclidean int

// Dimension returns n.
func (e Euclidean) Dimension() int { return int(e) }

// IsPositiveDefinite is always true.
func (Euclidean) IsPositiveDefinite() bool { return true }

func (Euclidean) product(a, b BasisBlade) []BasisBlade {
	return nonZero(a.GeometricProduct(b))
}

// Diagonal is an orthogonal metric; element i is e_{i+1}·e_{i+1}.
type Diagonal []float64

// Dimension returns the number of basis vectors.
func (d Diagonal) Dimension() int { return len(d) }

// IsPositiveDefinite reports whether every basis vector squares positive.
func (d Diagonal) IsPositiveDefinite() bool {
	for _, v := range d {
		if v <= 0 {
			return false
		}
	}

	return true
}

func (d Diagonal) product(a, b BasisBlade) []BasisBlade {
	return nonZero(a.GeometricProductDiag(b, d))
}

func nonZero(b BasisBlade) []BasisBlade {
	if b.scale == 0 {
		return nil
	}

	return []BasisBlade{b}
}
