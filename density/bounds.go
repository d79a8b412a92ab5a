package density

import (
	"math"

	"github.com/pkg/errors"
)

// minSmallOrder is the smallest order of the small-time series that still
// straddles the dominant k=0 image.
const minSmallOrder = 2

// Orders computes the truncation orders of both series for normalized time
// tt and absolute error eps, and selects the cheaper one.
//
// Large-time bound (tail of the sine series):
//
//	π·tt·ε < 1 : k_large = max(√(-2·ln(π·tt·ε) / (π²·tt)), 1/(π·√tt))
//	otherwise  : k_large = 1/(π·√tt)                      (LargeMinimal)
//
// Small-time bound (tail of the image series):
//
//	2·√(2π·tt)·ε < 1 : k_small = max(2 + √(-2·tt·ln(2·√(2π·tt)·ε)), √tt + 1)
//	otherwise        : k_small = 2                        (SmallMinimal)
//
// Both orders are non-decreasing as ε shrinks.
//
// Errors:
//   - ErrNonPositiveTime  — tt ≤ 0.
//   - ErrInvalidArgument  — tt is NaN.
//   - ErrInvalidTolerance — eps not finite and > 0.
func Orders(tt, eps float64) (Truncation, error) {
	if math.IsNaN(tt) {
		return Truncation{}, errors.Wrap(ErrInvalidArgument, "tt")
	}
	if !validTolerance(eps) {
		return Truncation{}, errors.Wrapf(ErrInvalidTolerance, "eps=%g", eps)
	}
	if tt <= 0 {
		return Truncation{}, errors.Wrapf(ErrNonPositiveTime, "tt=%g", tt)
	}

	return orders(tt, eps), nil
}

// orders assumes validated input.
func orders(tt, eps float64) Truncation {
	var tr Truncation

	// large t: floor 1/(π√tt) keeps the boundary condition satisfied.
	kMin := 1 / (math.Pi * math.Sqrt(tt))
	if math.Pi*tt*eps < 1 {
		tr.Large = math.Sqrt(-2 * math.Log(math.Pi*tt*eps) / (math.Pi * math.Pi * tt))
		tr.Large = math.Max(tr.Large, kMin)
	} else {
		tr.Large = kMin
		tr.LargeMinimal = true
	}

	// small t
	c := 2 * math.Sqrt(2*math.Pi*tt) * eps
	if c < 1 {
		tr.Small = 2 + math.Sqrt(-2*tt*math.Log(c))
		tr.Small = math.Max(tr.Small, math.Sqrt(tt)+1)
	} else {
		tr.Small = minSmallOrder
		tr.SmallMinimal = true
	}

	if tr.Small < tr.Large {
		tr.Strategy = SmallTime
	} else {
		tr.Strategy = LargeTime
	}

	return tr
}
