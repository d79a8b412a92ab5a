// Package density: functional configuration for Evaluate.
// This file defines:
//   - Option / Options (functional options),
//   - documented defaults,
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper that applies options over the defaults.
//
// Runtime inputs (tt, w) are validated with sentinel errors instead; only
// option constructors panic.
package density

import (
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultTolerance is the absolute error used when no tolerance is given.
const DefaultTolerance = 1e-4

const (
	panicToleranceInvalid = "density: WithTolerance: eps must be finite and > 0"
	panicStrategyInvalid  = "density: WithStrategy: unknown strategy"
)

// Options is the resolved configuration of one evaluation.
type Options struct {
	// Tolerance is the absolute error bound ε (> 0).
	Tolerance float64

	// Strategy forces a series; Auto selects by truncation order.
	Strategy Strategy

	// Logger receives one Debug entry per evaluation. Nil disables logging.
	Logger logrus.FieldLogger
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns Options{Tolerance: DefaultTolerance, Strategy: Auto}.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Strategy:  Auto,
	}
}

// WithTolerance sets the absolute error bound.
// Panics if eps is not finite and positive.
func WithTolerance(eps float64) Option {
	if !validTolerance(eps) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithStrategy forces the series used for evaluation.
// Panics on values outside {Auto, SmallTime, LargeTime}.
func WithStrategy(s Strategy) Option {
	if !s.valid() {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.Strategy = s }
}

// WithLogger attaches a logger for truncation diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over DefaultOptions. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validTolerance reports whether eps is usable as an error bound.
func validTolerance(eps float64) bool {
	return eps > 0 && !math.IsInf(eps, 1)
}
