// Package wfpt computes first-passage-time densities of the Wiener
// drift-diffusion process, following the series expansions of
// Navarro & Fuss (2009).
//
// 🚀 What is wfpt?
//
//	A small, pure-Go numerical library for evaluating the likelihood of a
//	single decision trial (reaction time, correctness, stimulus coherence)
//	under a drift-diffusion model:
//		• Normalized density f(t|0,1,w) with a guaranteed absolute error
//		• Automatic choice between the small-time and large-time series
//		• Change of variables to drift k, boundary B and start bias a
//		• Correct/incorrect trial mirroring
//
// ✨ Why choose wfpt?
//
//   - Error-controlled – truncation orders come from the series tail bounds
//   - Pure functions – no state, safe for concurrent use
//   - Explicit failures – invalid tolerance or outcome flags are sentinel errors
//   - gonum-friendly – ddm.FirstPassage satisfies distuv.LogProber
//
// Subpackages:
//
//	density/ — normalized density: truncation orders, series, selection
//	ddm/     — model parameters, trials, change of variables
//
//	go get github.com/katalvlaran/wfpt
package wfpt
