// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"math/rand"
)

// Bindings resolves symbol values during evaluation.
type Bindings interface {
	Value(s Symbol) (float64, error)
}

// MapBindings is a fixed symbol table.
type MapBindings map[Symbol]float64

// Value returns the bound value of s, or ErrUnboundSymbol.
func (m MapBindings) Value(s Symbol) (float64, error) {
	v, ok := m[s]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(s), ErrUnboundSymbol)
	}

	return v, nil
}

// RandomBindings assigns every symbol it is asked about a uniform random
// value in [min, max) and returns the same value on later lookups.
// It is not safe for concurrent use; create one per evaluation.
type RandomBindings struct {
	min, max float64
	rng      *rand.Rand
	values   map[Symbol]float64
}

// NewRandomBindings returns bindings drawing from [min, max) with the given seed.
func NewRandomBindings(min, max float64, seed int64) *RandomBindings {
	return &RandomBindings{
		min:    min,
		max:    max,
		rng:    rand.New(rand.NewSource(seed)),
		values: make(map[Symbol]float64),
	}
}

// Value returns the value drawn for s, drawing it on first use.
func (r *RandomBindings) Value(s Symbol) (float64, error) {
	if v, ok := r.values[s]; ok {
		return v, nil
	}
	v := r.min + r.rng.Float64()*(r.max-r.min)
	r.values[s] = v

	return v, nil
}
