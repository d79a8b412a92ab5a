package density

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Density returns f(tt|0,1,w), the first-passage density at the lower
// boundary of the zero-drift, unit-boundary Wiener process started at w,
// with absolute error at most eps.
//
// tt ≤ 0 yields 0: a first passage cannot happen at a non-positive time.
//
// Errors:
//   - ErrInvalidTolerance — eps not finite and > 0.
//   - ErrInvalidArgument  — tt or w is NaN.
func Density(tt, w, eps float64) (float64, error) {
	res, err := evaluate(tt, w, Options{Tolerance: eps, Strategy: Auto})
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Evaluate is Density with options. It also reports the truncation used.
//
// Options:
//   - WithTolerance(eps) — absolute error bound (default DefaultTolerance).
//   - WithStrategy(s)    — force SmallTime or LargeTime; Auto selects.
//   - WithLogger(l)      — Debug-level diagnostics per call.
//
// When a strategy is forced, Result.Truncation.Strategy reports the forced
// series and the bounds are still the ones Orders computes for tt and eps,
// so both series deliver the same accuracy guarantee. A forced series whose
// bound exceeds MaxTerms fails with ErrTooManyTerms instead of running.
func Evaluate(tt, w float64, opts ...Option) (Result, error) {
	return evaluate(tt, w, gatherOptions(opts...))
}

func evaluate(tt, w float64, o Options) (Result, error) {
	if math.IsNaN(tt) || math.IsNaN(w) {
		return Result{}, errors.Wrapf(ErrInvalidArgument, "tt=%g w=%g", tt, w)
	}
	if !validTolerance(o.Tolerance) {
		return Result{}, errors.Wrapf(ErrInvalidTolerance, "eps=%g", o.Tolerance)
	}
	if !o.Strategy.valid() {
		return Result{}, errors.Wrapf(ErrUnknownStrategy, "strategy=%d", int(o.Strategy))
	}
	if tt <= 0 {
		return Result{}, nil
	}

	tr := orders(tt, o.Tolerance)
	if o.Strategy != Auto {
		tr.Strategy = o.Strategy
	}
	if bound := tr.selectedBound(); bound > MaxTerms {
		return Result{}, errors.Wrapf(ErrTooManyTerms, "%s series at tt=%g needs %.3g terms", tr.Strategy, tt, bound)
	}

	var p float64
	switch tr.Strategy {
	case SmallTime:
		p = SmallTimeSeries(tt, w, tr.SmallTerms())
	case LargeTime:
		p = LargeTimeSeries(tt, w, tr.LargeTerms())
	}

	if o.Logger != nil {
		o.Logger.WithFields(logrus.Fields{
			"tt":       tt,
			"w":        w,
			"eps":      o.Tolerance,
			"k_small":  tr.Small,
			"k_large":  tr.Large,
			"strategy": tr.Strategy.String(),
			"terms":    tr.Terms(),
		}).Debug("density: series evaluated")
	}

	return Result{Value: p, Truncation: tr}, nil
}
