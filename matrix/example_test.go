package matrix_test

import (
	"fmt"
	"sort"

	"github.com/Sciumo/gaigen-sub003/matrix"
)

// ExampleEigenSymmetric diagonalizes a 2-D null metric (e.g. no·ni = -1).
func ExampleEigenSymmetric() {
	m, _ := matrix.NewDenseFrom([][]float64{{0, -1}, {-1, 0}})
	vals, _, err := matrix.EigenSymmetric(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	sort.Float64s(vals)
	fmt.Printf("%.3f %.3f\n", vals[0], vals[1])
	// Output:
	// -1.000 1.000
}
