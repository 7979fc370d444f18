// SPDX-License-Identifier: MIT

// Package spec: functional configuration for loading specifications.
package spec

import (
	"log/slog"
	"math"
)

const (
	// DefaultRoundingEpsilon snaps eigenvalues within this distance of an
	// integer when the document does not set roundingEpsilon.
	DefaultRoundingEpsilon = 1e-14

	// DefaultMetricName names the metric used when none is requested.
	DefaultMetricName = "default"

	// EuclideanMetricName always resolves to a Euclidean metric.
	EuclideanMetricName = "euclidean"
)

const (
	panicRoundingEps = "spec: WithRoundingEpsilon: eps must be finite and >= 0"
	panicNilLogger   = "spec: WithLogger: logger must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective loading configuration.
type Options struct {
	roundingEps float64
	logger      *slog.Logger
}

// WithRoundingEpsilon sets the eigenvalue rounding threshold used when the
// document does not carry one. Zero disables rounding.
func WithRoundingEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicRoundingEps)
	}

	return func(o *Options) { o.roundingEps = eps }
}

// WithLogger routes debug output of metric construction to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		roundingEps: DefaultRoundingEpsilon,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
