// Package density evaluates the first-passage-time density of the standard
// Wiener process: zero drift, unit boundary separation, relative start w.
//
// 🚀 What is f(t|0,1,w)?
//
//	A Brownian particle starts at w ∈ (0,1) between two absorbing boundaries
//	at 0 and 1. f(t|0,1,w) is the density of the time at which it first hits
//	the lower boundary. Every drift-diffusion density is a rescaled and
//	reweighted copy of this one (see package ddm).
//
// ✨ Two series, one answer (Navarro & Fuss, 2009):
//
//   - small-time series — reflected Gaussian kernels (method of images);
//     converges fast when t is small:
//
//     f = (2π t³)^(-1/2) · Σ_{k=-⌊(K-1)/2⌋}^{⌈(K-1)/2⌉} (w+2k)·exp(-(w+2k)²/2t)
//
//   - large-time series — Fourier sine expansion; converges fast when t is large:
//
//     f = π · Σ_{k=1}^{K} k·exp(-k²π²t/2)·sin(kπw)
//
// For a requested absolute error ε, Orders inverts both tail bounds into the
// minimal truncation orders k_small and k_large, and Density evaluates the
// series that needs fewer terms.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wfpt/density"
//
//	p, err := density.Density(0.5, 0.7, 1e-6)
//
//	// forced series + debug logging
//	res, err := density.Evaluate(0.2, 0.5,
//	  density.WithTolerance(1e-8),
//	  density.WithStrategy(density.SmallTime),
//	  density.WithLogger(logrus.StandardLogger()),
//	)
//
// Performance:
//
//   - Time:   O(K), K = number of retained terms (a handful for ε ≈ 1e-4)
//   - Memory: O(1)
//
// All functions are pure and safe for concurrent use.
package density
