package density

import "math"

// sqrt2Pi is √(2π).
var sqrt2Pi = math.Sqrt(2 * math.Pi)

// SmallTimeSeries evaluates the method-of-images series with K=terms kernels
// placed symmetrically around k=0:
//
//	Σ_{k=-⌊(K-1)/2⌋}^{⌈(K-1)/2⌉} (w+2k)·exp(-(w+2k)²/(2·tt))  /  √(2π·tt³)
//
// The normalizer is formed as √(2π)·tt·√tt so tt³ cannot underflow for tiny
// tt. A sum that underflowed to zero yields 0 rather than 0/0.
//
// tt must be > 0; terms < 1 yields 0.
func SmallTimeSeries(tt, w float64, terms int) float64 {
	if terms < 1 {
		return 0
	}
	lower := -(terms - 1) / 2 // -⌊(K-1)/2⌋
	upper := terms / 2        // ⌈(K-1)/2⌉

	var p float64
	for k := lower; k <= upper; k++ {
		d := w + 2*float64(k)
		p += d * math.Exp(-d*d/(2*tt))
	}
	if p == 0 {
		return 0
	}

	return p / (sqrt2Pi * tt * math.Sqrt(tt))
}

// LargeTimeSeries evaluates the Fourier sine series with K=terms terms:
//
//	π · Σ_{k=1}^{K} k·exp(-k²·π²·tt/2)·sin(k·π·w)
//
// tt must be > 0; terms < 1 yields 0.
func LargeTimeSeries(tt, w float64, terms int) float64 {
	var p float64
	for k := 1; k <= terms; k++ {
		kf := float64(k)
		p += kf * math.Exp(-kf*kf*math.Pi*math.Pi*tt/2) * math.Sin(kf*math.Pi*w)
	}

	return p * math.Pi
}
