// SPDX-License-Identifier: MIT

// Package ga: functional configuration for the transcendental functions,
// the random square analysis and metric construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package ga

import (
	"context"
	"log/slog"
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeriesOrder is the number of series terms used by ExpSeries,
	// SinSeries and CosSeries when no closed form applies.
	DefaultSeriesOrder = 12

	// DefaultRandomTrials is the number of random evaluations of a symbolic square.
	DefaultRandomTrials = 100

	// DefaultRequiredAgreement is how many trials must agree on the sign class.
	DefaultRequiredAgreement = 98

	// DefaultRandomMin and DefaultRandomMax bound the values drawn for symbols.
	DefaultRandomMin = -100.0
	DefaultRandomMax = 100.0

	// DefaultSquareEpsilon is the relative tolerance of the random square analysis:
	// values within ±eps are zero, and a non-scalar remainder larger than
	// eps·|scalar| fails the trial.
	DefaultSquareEpsilon = 1e-4

	// DefaultNumericSquareEpsilon is the relative remainder tolerance for
	// numeric squares: a square whose non-scalar part exceeds eps·|scalar|
	// has no sign and the functions fall back to their series.
	DefaultNumericSquareEpsilon = 1e-6

	// DefaultSeed seeds trial i with DefaultSeed+i.
	DefaultSeed int64 = 1

	// DefaultCompressEpsilon is the threshold Compress uses when given eps <= 0.
	DefaultCompressEpsilon = 1e-13
)

const (
	panicSeriesOrder = "ga: WithSeriesOrder: order must be >= 2"
	panicTrials      = "ga: WithRandomTrials: need 0 < required <= trials"
	panicRange       = "ga: WithRandomRange: need finite min < max"
	panicWorkers     = "ga: WithWorkers: workers must be > 0"
	panicSquareEps   = "ga: WithSquareEpsilon: eps must be finite and > 0"
	panicNumericEps  = "ga: WithNumericSquareEpsilon: eps must be finite and > 0"
	panicSquareHint  = "ga: WithSquareHint: sign must be -1, 0 or +1"
	panicNilLogger   = "ga: WithLogger: logger must not be nil"
	panicNilContext  = "ga: WithContext: ctx must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order    int     // series terms; DefaultSeriesOrder
	trials   int     // random trials; DefaultRandomTrials
	required int     // trials that must agree; DefaultRequiredAgreement
	min, max float64 // symbol value range
	seed     int64   // base seed for trial RNGs
	workers  int     // concurrent trials; GOMAXPROCS
	sqEps    float64 // random square tolerance
	numSqEps float64 // numeric square tolerance
	hint     float64 // caller-provided sign of the square
	hasHint  bool
	logger   *slog.Logger
	ctx      context.Context
}

// WithSeriesOrder sets the number of series terms.
func WithSeriesOrder(order int) Option {
	if order < 2 {
		panic(panicSeriesOrder)
	}

	return func(o *Options) { o.order = order }
}

// WithRandomTrials sets the number of trials and how many must agree.
func WithRandomTrials(trials, required int) Option {
	if trials <= 0 || required <= 0 || required > trials {
		panic(panicTrials)
	}

	return func(o *Options) { o.trials, o.required = trials, required }
}

// WithRandomRange sets the interval symbol values are drawn from.
func WithRandomRange(min, max float64) Option {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		panic(panicRange)
	}

	return func(o *Options) { o.min, o.max = min, max }
}

// WithSeed sets the base seed of the trial generators.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWorkers bounds the number of trials evaluated concurrently.
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = workers }
}

// WithSquareEpsilon sets the tolerance of the random square analysis.
func WithSquareEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicSquareEps)
	}

	return func(o *Options) { o.sqEps = eps }
}

// WithNumericSquareEpsilon sets the remainder tolerance of numeric squares.
func WithNumericSquareEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicNumericEps)
	}

	return func(o *Options) { o.numSqEps = eps }
}

// WithSquareHint asserts the sign of A² (-1, 0 or +1) and skips the square analysis.
func WithSquareHint(sign float64) Option {
	if sign != -1 && sign != 0 && sign != 1 {
		panic(panicSquareHint)
	}

	return func(o *Options) { o.hint, o.hasHint = sign, true }
}

// WithLogger routes debug output of degraded paths to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithContext sets the context the random trials run under.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.ctx = ctx }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		order:    DefaultSeriesOrder,
		trials:   DefaultRandomTrials,
		required: DefaultRequiredAgreement,
		min:      DefaultRandomMin,
		max:      DefaultRandomMax,
		seed:     DefaultSeed,
		workers:  runtime.GOMAXPROCS(0),
		sqEps:    DefaultSquareEpsilon,
		numSqEps: DefaultNumericSquareEpsilon,
		logger:   slog.New(slog.DiscardHandler),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
