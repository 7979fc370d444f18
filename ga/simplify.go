// SPDX-License-Identifier: MIT

package ga

import "sort"

// Simplify returns the canonical form of a list of blades: sorted by
// (grade, bitmap), one blade per bitmap, no zero blades.
//
// Behavior highlights:
//   - Numeric runs sum their scales.
//   - A run containing a symbolic blade becomes a blade of scale 1 whose sum
//     collects every member: numeric members contribute their scale as a
//     literal term, symbolic members their terms with the scale multiplied in.
//     The collected sum is then simplified, so x + (-x) cancels.
//   - The input slice is not modified.
//
// Complexity: O(n log n) plus the symbolic simplification of each run.
func Simplify(list []BasisBlade) []BasisBlade {
	if len(list) == 0 {
		return nil
	}
	sorted := append([]BasisBlade(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	out := make([]BasisBlade, 0, len(sorted))
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].bitmap == sorted[i].bitmap {
			j++
		}
		if b := sumScales(sorted[i].bitmap, sorted[i:j]); b.scale != 0 {
			out = append(out, b)
		}
		i = j
	}

	return out
}

// sumScales adds the coefficients of blades that share bitmap.
func sumScales(bitmap uint32, run []BasisBlade) BasisBlade {
	if len(run) == 1 {
		return run[0]
	}
	symbolic := false
	for _, b := range run {
		if b.IsSymbolic() {
			symbolic = true
			break
		}
	}
	if !symbolic {
		s := 0.0
		for _, b := range run {
			s += b.scale
		}
		return NewBlade(bitmap, s)
	}

	var sum Sum
	for _, b := range run {
		switch {
		case b.scale == 0:
			continue
		case !b.IsSymbolic():
			sum = sum.Add(Sum{{Literal(b.scale)}})
		case b.scale != 1:
			sum = sum.Add(Sum{{Literal(b.scale)}}.Mul(b.sym))
		default:
			sum = sum.Add(b.sym)
		}
	}
	if sum == nil {
		return BasisBlade{bitmap: bitmap}
	}

	return NewSymbolicBlade(bitmap, 1, sum)
}
