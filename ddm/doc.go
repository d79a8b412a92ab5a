// Package ddm maps drift-diffusion model parameters and single experimental
// trials onto the normalized first-passage density of package density.
//
// 🚀 What does it compute?
//
//	For drift k, boundary separation B and relative start a, the density of a
//	first passage through the lower boundary at drift time x is
//
//	  f(x|k,B,a) = exp(-k·B·a − k²·x/2) / B² · f(x/B² | 0, 1, a)
//
//	A trial supplies coherence, correctness and a reaction time. The drift time
//	is rt − ndt; the effective drift is k·coh. Error trials are evaluated at the
//	lower boundary directly; correct trials mirror the process (drift −k·coh,
//	start 1 − a) so the upper boundary becomes the lower one.
//
// ✨ Key features:
//   - PDF / LogPDF        — positional form (x, k, B, a)
//   - DDMPDF              — positional trial form (k, a, B, ndt, coh, correct, rt)
//   - TrialPDF / TrialLogPDF — struct form over Params and Trial
//   - FirstPassage        — gonum distuv.LogProber adapter for likelihood code
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/wfpt/ddm"
//	  "github.com/katalvlaran/wfpt/density"
//	)
//
//	p := ddm.Params{Drift: 1, Bias: 0.5, Boundary: 1, NonDecision: 0.2}
//	tr := ddm.Trial{Coherence: 1, Outcome: ddm.Correct, RT: 0.7}
//	f, err := ddm.TrialPDF(p, tr, density.WithTolerance(1e-6))
//
// The density is defective: integrated over x it gives the probability of
// absorption at the evaluated boundary, not 1. No normalization is applied.
package ddm
