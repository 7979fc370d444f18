// Package ga_test provides benchmarks for multivector products and the
// transcendental functions.
package ga_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Sciumo/gaigen-sub003/ga"
)

// sinks to defeat dead-code elimination
var (
	sinkMV  ga.Multivector
	sinkErr error
)

func randomMultivector(b *testing.B, n int, seed int64) ga.Multivector {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	list := make([]ga.BasisBlade, 0, 1<<uint(n))
	for bitmap := uint32(0); bitmap < 1<<uint(n); bitmap++ {
		list = append(list, ga.NewBlade(bitmap, rng.Float64()*2-1))
	}

	return ga.NewMultivector(list...)
}

func BenchmarkGeometricProduct_Euclidean(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randomMultivector(b, n, 1), randomMultivector(b, n, 2)
			sp := ga.Euclidean(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkMV = x.GeometricProduct(y, sp)
			}
		})
	}
}

func BenchmarkGeometricProduct_Conformal(b *testing.B) {
	b.ReportAllocs()
	m, err := ga.NewMetric(conformalRows)
	if err != nil {
		b.Fatal(err)
	}
	x, y := randomMultivector(b, 5, 1), randomMultivector(b, 5, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMV = x.GeometricProduct(y, m)
	}
}

func BenchmarkGeometricProduct_Symbolic(b *testing.B) {
	b.ReportAllocs()
	x := sym("a1", 1).Add(sym("a2", 2)).Add(sym("a3", 4))
	y := sym("b1", 1).Add(sym("b2", 2)).Add(sym("b3", 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMV = x.GeometricProduct(y, nil)
	}
}

func BenchmarkExp(b *testing.B) {
	b.ReportAllocs()
	b.Run("closed", func(b *testing.B) {
		x := rotorBivector()
		for i := 0; i < b.N; i++ {
			sinkMV, sinkErr = x.Exp(ga.Euclidean(3))
		}
	})
	b.Run("series", func(b *testing.B) {
		x := randomMultivector(b, 3, 3)
		for i := 0; i < b.N; i++ {
			sinkMV, sinkErr = x.Exp(ga.Euclidean(3))
		}
	})
	b.Run("symbolic", func(b *testing.B) {
		x := sym("a", 3)
		for i := 0; i < b.N; i++ {
			sinkMV, sinkErr = x.Exp(ga.Euclidean(2))
		}
	})
}
