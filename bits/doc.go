// SPDX-License-Identifier: MIT

// Package bits provides bitmap helpers for basis-vector subsets.
//
// A bitmap is a uint32 where bit i set means basis vector i participates in a
// blade. Grade queries, canonical reordering and metric corrections all reduce
// to the primitives here: population count, highest/lowest set bit and
// ordered iteration over set bits.
//
// Complexity:
//
//	All functions run in O(1) except Indices, which is O(popcount).
package bits
