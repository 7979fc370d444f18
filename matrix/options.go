// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric tolerances.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by structural checks
	// (IsSymmetric, IsDiagonal). It matches the metric layer's 1e-6 policy.
	DefaultEpsilon = 1e-6

	// DefaultEigenTolerance is the off-diagonal magnitude below which Jacobi stops.
	DefaultEigenTolerance = 1e-14

	// DefaultEigenSweeps bounds the number of Jacobi rotations as
	// DefaultEigenSweeps·n² for an n×n input.
	DefaultEigenSweeps = 100
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSweepsInvalid  = "matrix: WithSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64 // structural tolerance; DefaultEpsilon
	sweeps int     // Jacobi budget multiplier; DefaultEigenSweeps
}

// WithEpsilon sets the tolerance used by structural checks.
//
// Errors:
//   - Panics when eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSweeps sets the Jacobi rotation budget multiplier.
func WithSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.sweeps = sweeps }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, sweeps: DefaultEigenSweeps}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
