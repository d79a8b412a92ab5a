package ddm

import (
	"math"

	"github.com/katalvlaran/wfpt/density"
	"github.com/pkg/errors"
)

// PDF returns the density of a lower-boundary first passage at drift time x
// for drift k, boundary separation B and relative start a:
//
//	tt = x / B²
//	f  = f(tt|0,1,a) · exp(-k·B·a − k²·x/2) / B²
//
// x ≤ 0 yields 0 for any parameters: a first passage cannot occur at a
// non-positive time, so the check runs before validation.
// Options are forwarded to density.Evaluate (tolerance, strategy, logger).
//
// Errors:
//   - ErrInvalidParameter         — B not finite and > 0; k or a not finite.
//   - density.ErrInvalidArgument  — x is NaN (wrapped).
func PDF(x, k, B, a float64, opts ...density.Option) (float64, error) {
	if x <= 0 {
		return 0, nil
	}
	if err := validateParams(k, B, a); err != nil {
		return 0, err
	}

	res, err := density.Evaluate(x/(B*B), a, opts...)
	if err != nil {
		return 0, errors.Wrap(err, "ddm: normalized density")
	}

	return reweight(res.Value, -k*B*a-k*k*x/2-2*math.Log(B)), nil
}

// reweight returns p·exp(logScale) without forming exp(logScale) alone,
// which overflows for large drift times boundary while p may be tiny.
// A zero density stays zero; tolerance-sized negative noise keeps its sign.
func reweight(p, logScale float64) float64 {
	if p == 0 {
		return 0
	}

	return math.Copysign(math.Exp(math.Log(math.Abs(p))+logScale), p)
}

// LogPDF returns the natural logarithm of PDF. A density ≤ 0, including
// x ≤ 0 and tolerance-sized negative noise, maps to -Inf.
func LogPDF(x, k, B, a float64, opts ...density.Option) (float64, error) {
	p, err := PDF(x, k, B, a, opts...)
	if err != nil {
		return 0, err
	}

	return logDensity(p), nil
}

func logDensity(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}

	return math.Log(p)
}

// validateParams checks drift, boundary and bias against their domains.
// The bias is not range-checked: the series are defined for any real start.
func validateParams(k, B, a float64) error {
	switch {
	case math.IsNaN(k) || math.IsInf(k, 0):
		return errors.Wrapf(ErrInvalidParameter, "drift=%g", k)
	case !(B > 0) || math.IsInf(B, 1):
		return errors.Wrapf(ErrInvalidParameter, "boundary=%g", B)
	case math.IsNaN(a) || math.IsInf(a, 0):
		return errors.Wrapf(ErrInvalidParameter, "bias=%g", a)
	}

	return nil
}
