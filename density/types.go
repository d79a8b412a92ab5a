package density

import "math"

// Strategy selects which series expansion evaluates the density.
//
//   - Auto      — pick the series with the smaller truncation order.
//   - SmallTime — method-of-images series, fast for small t.
//   - LargeTime — Fourier sine series, fast for large t.
type Strategy int

const (
	// Auto lets Orders decide. Never reported as a selected strategy.
	Auto Strategy = iota

	// SmallTime evaluates the reflected-Gaussian series.
	SmallTime

	// LargeTime evaluates the eigenfunction (sine) series.
	LargeTime
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case SmallTime:
		return "small-time"
	case LargeTime:
		return "large-time"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the declared strategies.
func (s Strategy) valid() bool {
	return s == Auto || s == SmallTime || s == LargeTime
}

// Truncation holds the truncation orders computed for one (tt, ε) pair.
//
// Fields:
//   - Small, Large — continuous bounds k_small and k_large; the series keep
//     ⌈Small⌉ and ⌈Large⌉ terms respectively.
//   - SmallMinimal, LargeMinimal — true when ε was too loose to refine the
//     bound and the minimal order was used instead.
//   - Strategy — SmallTime if Small < Large, LargeTime otherwise.
type Truncation struct {
	Small        float64
	Large        float64
	SmallMinimal bool
	LargeMinimal bool
	Strategy     Strategy
}

// MaxTerms caps the number of terms either series may keep. Automatic
// selection stays far below it; only a forced series at an extreme tt
// can reach it.
const MaxTerms = 1 << 20

// SmallTerms returns the number of terms kept by the small-time series,
// clamped to MaxTerms.
func (t Truncation) SmallTerms() int { return termCount(t.Small) }

// LargeTerms returns the number of terms kept by the large-time series,
// clamped to MaxTerms.
func (t Truncation) LargeTerms() int { return termCount(t.Large) }

// termCount converts a bound to ⌈bound⌉ without leaving the int range.
func termCount(bound float64) int {
	if !(bound < MaxTerms) {
		return MaxTerms
	}

	return int(math.Ceil(bound))
}

// selectedBound returns the continuous bound of the selected series.
func (t Truncation) selectedBound() float64 {
	if t.Strategy == SmallTime {
		return t.Small
	}

	return t.Large
}

// Terms returns the number of terms kept by the selected series.
func (t Truncation) Terms() int {
	if t.Strategy == SmallTime {
		return t.SmallTerms()
	}

	return t.LargeTerms()
}

// Result is the outcome of Evaluate.
type Result struct {
	// Value is f(tt|0,1,w), accurate to the requested tolerance.
	Value float64

	// Truncation describes the orders used. Zero when tt ≤ 0.
	Truncation Truncation
}
