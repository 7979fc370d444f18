// SPDX-License-Identifier: MIT

package bits

import mbits "math/bits"

// NoBit is returned by HighestOneBit and LowestOneBit for a zero bitmap.
const NoBit = -1

// BitCount returns the number of set bits (the grade of a basis blade).
func BitCount(b uint32) int {
	return mbits.OnesCount32(b)
}

// HighestOneBit returns the index of the most significant set bit, or NoBit.
func HighestOneBit(b uint32) int {
	if b == 0 {
		return NoBit
	}

	return 31 - mbits.LeadingZeros32(b)
}

// LowestOneBit returns the index of the least significant set bit, or NoBit.
func LowestOneBit(b uint32) int {
	if b == 0 {
		return NoBit
	}

	return mbits.TrailingZeros32(b)
}

// NumberOfLeadingZeroBits returns the count of zero bits above the highest set bit.
// Returns 32 for a zero bitmap.
func NumberOfLeadingZeroBits(b uint32) int {
	return mbits.LeadingZeros32(b)
}

// NumberOfTrailingZeroBits returns the count of zero bits below the lowest set bit.
// Returns 32 for a zero bitmap.
func NumberOfTrailingZeroBits(b uint32) int {
	return mbits.TrailingZeros32(b)
}

// Indices lists the set bit positions in ascending order.
//
// Implementation:
//   - Stage 1: allocate exactly BitCount(b) slots.
//   - Stage 2: peel the lowest set bit until b is empty.
//
// Complexity:
//   - Time O(popcount), Space O(popcount).
func Indices(b uint32) []int {
	out := make([]int, 0, BitCount(b))
	for b != 0 {
		i := mbits.TrailingZeros32(b)
		out = append(out, i)
		b &= b - 1 // clear lowest set bit
	}

	return out
}

// Full returns the bitmap with the n lowest bits set (the pseudoscalar of an n-dimensional space).
// n is clamped to [0, 32].
func Full(n int) uint32 {
	switch {
	case n <= 0:
		return 0
	case n >= 32:
		return ^uint32(0)
	}

	return uint32(1)<<uint(n) - 1
}
