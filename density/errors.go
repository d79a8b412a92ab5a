// Package density: sentinel error set.
// Every message is prefixed with "density: ..." so callers can match with
// errors.Is after any amount of wrapping.

package density

import "github.com/pkg/errors"

var (
	// ErrInvalidTolerance is returned when the requested absolute error is
	// not a finite positive number. A non-positive tolerance would silently
	// collapse both truncation orders to their minimum.
	ErrInvalidTolerance = errors.New("density: error tolerance must be finite and > 0")

	// ErrInvalidArgument indicates a NaN normalized time or start point.
	ErrInvalidArgument = errors.New("density: NaN argument")

	// ErrNonPositiveTime is returned by Orders for tt ≤ 0, where neither
	// tail bound is defined. Density and Evaluate map tt ≤ 0 to 0 instead.
	ErrNonPositiveTime = errors.New("density: normalized time must be > 0")

	// ErrTooManyTerms is returned when a forced series would need more than
	// MaxTerms terms at the given tt, e.g. LargeTime at tt → 0.
	ErrTooManyTerms = errors.New("density: truncation order exceeds MaxTerms")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("density: unknown series strategy")
)
