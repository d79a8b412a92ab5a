package ddm

import (
	"math"

	"github.com/katalvlaran/wfpt/density"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

var _ distuv.LogProber = FirstPassage{}

// FirstPassage is the first-passage-time distribution at the lower boundary,
// shaped for gonum-based likelihood code (distuv.LogProber).
//
// Methods cannot return errors, so invalid parameters yield NaN the way
// gonum distributions do. Tolerance 0 means density.DefaultTolerance.
type FirstPassage struct {
	Drift     float64
	Boundary  float64
	Bias      float64
	Tolerance float64
}

// Passage returns the distribution of drift times for a trial with the
// given coherence and outcome. Correct outcomes mirror drift and start.
func (p Params) Passage(coh float64, o Outcome) (FirstPassage, error) {
	fp := FirstPassage{Drift: p.Drift * coh, Boundary: p.Boundary, Bias: p.Bias}
	switch o {
	case Incorrect:
	case Correct:
		fp.Drift, fp.Bias = -fp.Drift, 1-fp.Bias
	default:
		return FirstPassage{}, errors.Wrapf(ErrInvalidInput, "correct=%d", int(o))
	}

	return fp, nil
}

// Prob returns the density at drift time x, or NaN on invalid parameters.
func (d FirstPassage) Prob(x float64) float64 {
	var opts []density.Option
	switch {
	case d.Tolerance == 0:
	case d.Tolerance > 0 && !math.IsInf(d.Tolerance, 1):
		opts = append(opts, density.WithTolerance(d.Tolerance))
	default:
		return math.NaN()
	}

	p, err := PDF(x, d.Drift, d.Boundary, d.Bias, opts...)
	if err != nil {
		return math.NaN()
	}

	return p
}

// LogProb returns the log density at drift time x; -Inf where Prob is ≤ 0.
func (d FirstPassage) LogProb(x float64) float64 {
	p := d.Prob(x)
	if math.IsNaN(p) {
		return p
	}

	return logDensity(p)
}

// Mass returns the probability that the process is absorbed at the lower
// boundary at all, the integral of Prob over x:
//
//	k = 0 : 1 − a
//	k ≠ 0 : (exp(-2·k·B·a) − exp(-2·k·B)) / (1 − exp(-2·k·B))
func (d FirstPassage) Mass() float64 {
	if validateParams(d.Drift, d.Boundary, d.Bias) != nil {
		return math.NaN()
	}
	kb := d.Drift * d.Boundary
	switch {
	case kb == 0:
		return 1 - d.Bias
	case kb < 0:
		// multiplied through by exp(2kB) so nothing overflows
		return math.Expm1(2*kb*(1-d.Bias)) / math.Expm1(2*kb)
	default:
		return (math.Exp(-2*kb*d.Bias) - math.Exp(-2*kb)) / -math.Expm1(-2*kb)
	}
}
