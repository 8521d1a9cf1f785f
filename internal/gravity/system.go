package gravity

import (
	"math"

	"github.com/lalithu/Classical-TwoBody/internal/body"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

// System is the coupled Newtonian N-body ODE system over a body registry.
// State layout follows the registry: positions body-major, then velocities.
//
// Softening is zero by default. With zero softening a zero separation
// produces non-finite accelerations, which the integrator detects and
// reports; distances are never clamped silently.
type System struct {
	G         float64
	Softening float64

	masses []float64
	n, dim int
}

func NewSystem(reg *body.Registry, g float64) *System {
	return &System{
		G:      g,
		masses: reg.Masses(),
		n:      reg.Len(),
		dim:    reg.Dim(),
	}
}

func (s *System) Dim() int { return 2 * s.n * s.dim }

func (s *System) Derive(x dynamics.State, t float64) dynamics.State {
	n, d := s.n, s.dim
	dx := make(dynamics.State, len(x))
	acc := make([]float64, n*d)
	eps2 := s.Softening * s.Softening

	for i := 0; i < n; i++ {
		ri := x[i*d : (i+1)*d]

		for j := i + 1; j < n; j++ {
			rj := x[j*d : (j+1)*d]

			r2 := eps2
			for k := 0; k < d; k++ {
				dr := rj[k] - ri[k]
				r2 += dr * dr
			}

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			fij := s.G * s.masses[j] * r3Inv
			fji := s.G * s.masses[i] * r3Inv
			for k := 0; k < d; k++ {
				dr := rj[k] - ri[k]
				acc[i*d+k] += fij * dr
				acc[j*d+k] -= fji * dr
			}
		}
	}

	off := n * d
	for i := 0; i < off; i++ {
		dx[i] = x[off+i]
		dx[off+i] = acc[i]
	}

	return dx
}
