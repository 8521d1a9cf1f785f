package orbit

import (
	"github.com/lalithu/Classical-TwoBody/internal/body"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

// Trajectory is the time series produced by one integration run. Times are
// strictly ascending. It carries its own copy of the body names and
// dimensionality so samples decode without touching the registry.
type Trajectory struct {
	Times  []float64
	States []dynamics.State
	Names  []string
	Dim    int

	// Truncated is set when integration stopped before the full time span;
	// Times and States then cover only the valid prefix.
	Truncated bool
}

// Sample is the decoded state of every body at one sample time.
type Sample struct {
	Time   float64
	Bodies []body.BodyState
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Sample decodes the i-th row into per-body positions and velocities,
// copied out of the stored state vector.
func (tr *Trajectory) Sample(i int) Sample {
	n, d := len(tr.Names), tr.Dim
	s := tr.States[i]

	bodies := make([]body.BodyState, n)
	for b := 0; b < n; b++ {
		bodies[b] = body.BodyState{
			Name:     tr.Names[b],
			Position: append([]float64(nil), s[b*d:(b+1)*d]...),
			Velocity: append([]float64(nil), s[n*d+b*d:n*d+(b+1)*d]...),
		}
	}
	return Sample{Time: tr.Times[i], Bodies: bodies}
}

// PositionSeries returns one position component of one body across all
// samples, for plotting.
func (tr *Trajectory) PositionSeries(bodyIdx, axis int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[bodyIdx*tr.Dim+axis]
	}
	return out
}

// VelocitySeries returns one velocity component of one body across all
// samples.
func (tr *Trajectory) VelocitySeries(bodyIdx, axis int) []float64 {
	off := len(tr.Names) * tr.Dim
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[off+bodyIdx*tr.Dim+axis]
	}
	return out
}
