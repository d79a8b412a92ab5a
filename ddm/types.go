package ddm

import "fmt"

// Params are the drift-diffusion model parameters.
//
// Fields:
//   - Drift       — drift coefficient k, scaled per trial by coherence.
//   - Bias        — relative start point a = z/B, expected in (0,1).
//   - Boundary    — boundary separation B > 0.
//   - NonDecision — non-decision time ndt, subtracted from reaction times.
type Params struct {
	Drift       float64 `yaml:"drift"`
	Bias        float64 `yaml:"bias"`
	Boundary    float64 `yaml:"boundary"`
	NonDecision float64 `yaml:"non_decision"`
}

// Outcome is a trial's correctness flag.
type Outcome int

const (
	// Incorrect trials end at the lower boundary.
	Incorrect Outcome = 0

	// Correct trials end at the upper boundary.
	Correct Outcome = 1
)

// Valid reports whether o is Incorrect or Correct.
func (o Outcome) Valid() bool { return o == Incorrect || o == Correct }

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Incorrect:
		return "incorrect"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Trial is one observed decision.
type Trial struct {
	Coherence float64 `yaml:"coherence"`
	Outcome   Outcome `yaml:"correct"`
	// RT is wall-clock reaction time in seconds, non-decision time included.
	RT float64 `yaml:"rt"`
}
