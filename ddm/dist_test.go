package ddm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/wfpt/ddm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// TestFirstPassage_MatchesPDF ensures Prob and LogProb agree with the positional API.
func TestFirstPassage_MatchesPDF(t *testing.T) {
	d := ddm.FirstPassage{Drift: 0.8, Boundary: 1.5, Bias: 0.3, Tolerance: 1e-10}
	for _, x := range []float64{0.1, 0.5, 2} {
		want, err := ddm.PDF(x, d.Drift, d.Boundary, d.Bias)
		require.NoError(t, err)
		assert.InDelta(t, want, d.Prob(x), 1e-4, "x=%g", x)
		assert.InDelta(t, math.Log(d.Prob(x)), d.LogProb(x), 1e-15, "x=%g", x)
	}
	assert.Equal(t, 0.0, d.Prob(-1))
	assert.True(t, math.IsInf(d.LogProb(0), -1))
}

// TestFirstPassage_InvalidIsNaN follows the gonum convention for bad parameters.
func TestFirstPassage_InvalidIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(ddm.FirstPassage{Drift: 1, Boundary: 0, Bias: 0.5}.Prob(0.5)))
	assert.True(t, math.IsNaN(ddm.FirstPassage{Drift: 1, Boundary: 1, Bias: 0.5, Tolerance: -1}.Prob(0.5)))
	assert.True(t, math.IsNaN(ddm.FirstPassage{Drift: 1, Boundary: -1, Bias: 0.5}.LogProb(0.5)))
	assert.True(t, math.IsNaN(ddm.FirstPassage{Drift: math.NaN(), Boundary: 1, Bias: 0.5}.Mass()))
}

// TestFirstPassage_Mass integrates Prob and compares with the closed-form
// absorption probability at the lower boundary.
func TestFirstPassage_Mass(t *testing.T) {
	cases := []ddm.FirstPassage{
		{Drift: 0, Boundary: 1, Bias: 0.3},
		{Drift: 1, Boundary: 1, Bias: 0.5},
		{Drift: -0.8, Boundary: 1.5, Bias: 0.3},
		{Drift: 2, Boundary: 2, Bias: 0.6},
		{Drift: 0.5, Boundary: 0.8, Bias: 0.4},
	}
	for _, d := range cases {
		d.Tolerance = 1e-10
		b2 := d.Boundary * d.Boundary
		edges := []float64{0, 0.05 * b2, 0.2 * b2, 0.5 * b2, 2 * b2, 20 * b2}

		var mass float64
		for i := 1; i < len(edges); i++ {
			mass += quad.Fixed(d.Prob, edges[i-1], edges[i], 64, nil, 1)
		}
		assert.InDelta(t, d.Mass(), mass, 1e-6, "%+v", d)
	}
	assert.InDelta(t, 0.7, ddm.FirstPassage{Boundary: 1, Bias: 0.3}.Mass(), 1e-15)
}

// TestParams_Passage checks the outcome flip and that both boundaries share all mass.
func TestParams_Passage(t *testing.T) {
	p := ddm.Params{Drift: 1.2, Bias: 0.4, Boundary: 1.3, NonDecision: 0.2}

	lower, err := p.Passage(0.5, ddm.Incorrect)
	require.NoError(t, err)
	assert.Equal(t, ddm.FirstPassage{Drift: 0.6, Boundary: 1.3, Bias: 0.4}, lower)

	upper, err := p.Passage(0.5, ddm.Correct)
	require.NoError(t, err)
	assert.Equal(t, -0.6, upper.Drift)
	assert.InDelta(t, 0.6, upper.Bias, 1e-15)

	assert.InDelta(t, 1, lower.Mass()+upper.Mass(), 1e-12)

	_, err = p.Passage(0.5, ddm.Outcome(2))
	assert.ErrorIs(t, err, ddm.ErrInvalidInput)
}

// TestFirstPassage_MassExtremeDrift keeps Mass finite where exp(-2·k·B) overflows.
func TestFirstPassage_MassExtremeDrift(t *testing.T) {
	assert.InDelta(t, 1, ddm.FirstPassage{Drift: -400, Boundary: 1, Bias: 0.5}.Mass(), 1e-15)
	assert.InDelta(t, 0, ddm.FirstPassage{Drift: 400, Boundary: 1, Bias: 0.5}.Mass(), 1e-15)
	assert.InDelta(t, 0.8948004933166315, ddm.FirstPassage{Drift: -0.8, Boundary: 1.5, Bias: 0.3}.Mass(), 1e-14)
}

// TestFirstPassage_ImportanceSampling uses FirstPassage as a gonum sampling
// target; the mean importance weight estimates Mass.
func TestFirstPassage_ImportanceSampling(t *testing.T) {
	for _, d := range []ddm.FirstPassage{
		{Drift: 0, Boundary: 1, Bias: 0.5},
		{Drift: 1, Boundary: 1, Bias: 0.5},
		{Drift: -0.8, Boundary: 1.5, Bias: 0.3},
	} {
		b2 := d.Boundary * d.Boundary
		proposal := distuv.LogNormal{Mu: math.Log(0.15 * b2), Sigma: 1}

		batch := make([]float64, 20000)
		weights := make([]float64, len(batch))
		sampleuv.Importance{Target: d, Proposal: proposal}.SampleWeighted(batch, weights)

		for i, w := range weights {
			require.False(t, math.IsNaN(w), "weight %d at x=%g", i, batch[i])
		}
		assert.InDelta(t, d.Mass(), floats.Sum(weights)/float64(len(weights)), 0.03, "%+v", d)
	}
}
