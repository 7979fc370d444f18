// SPDX-License-Identifier: MIT

package ga

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// RandomSquareSign decides the sign class of a symbolic square a2 by
// evaluating it under independent random bindings.
//
// Implementation:
//   - Trial i binds every symbol to a uniform value from the configured range,
//     drawn by a generator seeded with seed+i, so results are reproducible.
//   - A trial fails when its non-scalar remainder exceeds eps·|scalar|.
//   - Scalars above eps count positive, below -eps negative, otherwise zero.
//   - Trials run on a bounded errgroup pool; the first failure cancels the rest.
//
// Returns +1, -1 or 0 when at least the required number of trials agree.
//
// Errors:
//   - ErrInconsistentSquare when no class reaches the required agreement or
//     a trial leaves a non-scalar remainder.
//   - evaluation errors of a trial (ErrDomain, ...), and ctx cancellation.
//
// Options: WithRandomTrials, WithRandomRange, WithSeed, WithWorkers,
// WithSquareEpsilon.
func RandomSquareSign(ctx context.Context, a2 Multivector, opts ...Option) (float64, error) {
	return randomSquareSign(ctx, a2, gatherOptions(opts...))
}

func randomSquareSign(ctx context.Context, a2 Multivector, o Options) (float64, error) {
	var pos, neg, zero atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < o.trials; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := a2.Eval(NewRandomBindings(o.min, o.max, o.seed+int64(i)))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			s := v.RealScalarPart()
			rest := math.Abs(v.SubScalar(s).NormE().RealScalarPart())
			if rest > math.Abs(s)*o.sqEps {
				return fmt.Errorf("trial %d: non-scalar remainder %g: %w", i, rest, ErrInconsistentSquare)
			}
			switch {
			case s > o.sqEps:
				pos.Add(1)
			case s < -o.sqEps:
				neg.Add(1)
			default:
				zero.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("RandomSquareSign: %w", err)
	}

	req := int64(o.required)
	switch {
	case pos.Load() >= req:
		return 1, nil
	case zero.Load() >= req:
		return 0, nil
	case neg.Load() >= req:
		return -1, nil
	}

	return 0, fmt.Errorf("RandomSquareSign: %d positive, %d negative, %d zero of %d trials: %w",
		pos.Load(), neg.Load(), zero.Load(), o.trials, ErrInconsistentSquare)
}

// squareSign returns the sign class of a² in sp, or ok == false when a² is
// not a scalar (numeric input) or its sign cannot be determined (symbolic input).
func (a Multivector) squareSign(sp Space, o Options) (float64, bool) {
	if o.hasHint {
		return o.hint, true
	}
	a2 := a.GeometricProduct(a, sp)
	if a.HasSymbolicScalars() {
		s, err := randomSquareSign(o.ctx, a2, o)
		if err != nil {
			o.logger.Debug("symbolic square has no consistent sign",
				slog.String("square", a2.String()), slog.Any("err", err))
			return 0, false
		}
		return s, true
	}

	s := a2.RealScalarPart()
	rest := a2.SubScalar(s).NormE().RealScalarPart()
	switch {
	case rest > math.Abs(s)*o.numSqEps:
		return 0, false
	case s > 0:
		return 1, true
	case s < 0:
		return -1, true
	}

	return 0, true
}
