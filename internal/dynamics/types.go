package dynamics

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an autonomous first-order ODE system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Conserved is implemented by systems that can evaluate their total energy,
// used for drift diagnostics.
type Conserved interface {
	Energy(x State) float64
}

type Stepper interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveStepper advances with an embedded error estimate and returns the
// suggested size for the next step.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}
