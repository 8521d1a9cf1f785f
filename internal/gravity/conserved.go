package gravity

import (
	"math"

	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

// Energy returns the total mechanical energy at the given state:
// kinetic plus pairwise gravitational potential. The softening length,
// if set, enters the potential the same way it enters the force.
func (s *System) Energy(x dynamics.State) float64 {
	n, d := s.n, s.dim
	off := n * d
	eps2 := s.Softening * s.Softening

	ke := 0.0
	pe := 0.0

	for i := 0; i < n; i++ {
		v2 := 0.0
		for k := 0; k < d; k++ {
			v := x[off+i*d+k]
			v2 += v * v
		}
		ke += 0.5 * s.masses[i] * v2

		for j := i + 1; j < n; j++ {
			r2 := eps2
			for k := 0; k < d; k++ {
				dr := x[j*d+k] - x[i*d+k]
				r2 += dr * dr
			}
			pe -= s.G * s.masses[i] * s.masses[j] / math.Sqrt(r2)
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum, one component per axis.
func (s *System) Momentum(x dynamics.State) []float64 {
	n, d := s.n, s.dim
	off := n * d
	p := make([]float64, d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			p[k] += s.masses[i] * x[off+i*d+k]
		}
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
// In 2D the result has one element, the z-component of r x v; in 3D the
// full vector.
func (s *System) AngularMomentum(x dynamics.State) []float64 {
	n, d := s.n, s.dim
	off := n * d

	if d == 2 {
		lz := 0.0
		for i := 0; i < n; i++ {
			rx, ry := x[i*2], x[i*2+1]
			vx, vy := x[off+i*2], x[off+i*2+1]
			lz += s.masses[i] * (rx*vy - ry*vx)
		}
		return []float64{lz}
	}

	l := make([]float64, 3)
	for i := 0; i < n; i++ {
		rx, ry, rz := x[i*3], x[i*3+1], x[i*3+2]
		vx, vy, vz := x[off+i*3], x[off+i*3+1], x[off+i*3+2]
		l[0] += s.masses[i] * (ry*vz - rz*vy)
		l[1] += s.masses[i] * (rz*vx - rx*vz)
		l[2] += s.masses[i] * (rx*vy - ry*vx)
	}
	return l
}
