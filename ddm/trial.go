package ddm

import "github.com/katalvlaran/wfpt/density"

// DDMPDF returns the density of one observed trial.
//
//	x = rt − ndt
//	correct == 0 → PDF(x,  k·coh, B, a)
//	correct == 1 → PDF(x, −k·coh, B, 1−a)
//
// Correct trials mirror the process: flipping the drift sign and the start
// point turns the upper boundary into the lower one.
//
// Errors:
//   - ErrInvalidInput — correct outside {0, 1}.
//   - anything PDF returns.
func DDMPDF(k, a, B, ndt, coh float64, correct int, rt float64, opts ...density.Option) (float64, error) {
	return TrialPDF(
		Params{Drift: k, Bias: a, Boundary: B, NonDecision: ndt},
		Trial{Coherence: coh, Outcome: Outcome(correct), RT: rt},
		opts...,
	)
}

// TrialPDF is DDMPDF over Params and Trial.
func TrialPDF(p Params, t Trial, opts ...density.Option) (float64, error) {
	fp, err := p.Passage(t.Coherence, t.Outcome)
	if err != nil {
		return 0, err
	}

	return PDF(t.RT-p.NonDecision, fp.Drift, fp.Boundary, fp.Bias, opts...)
}

// TrialLogPDF returns the natural logarithm of TrialPDF, -Inf for a zero density.
func TrialLogPDF(p Params, t Trial, opts ...density.Option) (float64, error) {
	f, err := TrialPDF(p, t, opts...)
	if err != nil {
		return 0, err
	}

	return logDensity(f), nil
}
