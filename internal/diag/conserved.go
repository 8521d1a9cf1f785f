// Package diag computes conserved-quantity series over a trajectory.
//
// The integrator is not symplectic, so energy and momentum are conserved
// only to within solver tolerance; the drift figures here bound that error
// and back the regression tests.
package diag

import (
	"math"

	"github.com/lalithu/Classical-TwoBody/internal/gravity"
	"github.com/lalithu/Classical-TwoBody/internal/orbit"
)

// Report holds total energy, linear momentum and angular momentum at every
// sample time, plus the worst-case drifts relative to the first sample.
type Report struct {
	Times           []float64
	Energy          []float64
	Momentum        [][]float64
	AngularMomentum [][]float64

	// EnergyDrift is max |E(t)-E(0)| / |E(0)| over the trajectory.
	EnergyDrift float64
	// MomentumDrift is the max Euclidean distance of P(t) from P(0).
	MomentumDrift float64
}

// Analyze evaluates the conserved quantities of sys at every sample of tr.
// sys must be built over the same registry (and G, softening) that
// produced tr.
func Analyze(tr *orbit.Trajectory, sys *gravity.System) *Report {
	n := tr.Len()
	rep := &Report{
		Times:           append([]float64(nil), tr.Times...),
		Energy:          make([]float64, n),
		Momentum:        make([][]float64, n),
		AngularMomentum: make([][]float64, n),
	}

	for i, s := range tr.States {
		rep.Energy[i] = sys.Energy(s)
		rep.Momentum[i] = sys.Momentum(s)
		rep.AngularMomentum[i] = sys.AngularMomentum(s)
	}

	if n == 0 {
		return rep
	}

	e0 := rep.Energy[0]
	p0 := rep.Momentum[0]
	for i := 1; i < n; i++ {
		if e0 != 0 {
			drift := math.Abs(rep.Energy[i]-e0) / math.Abs(e0)
			rep.EnergyDrift = math.Max(rep.EnergyDrift, drift)
		}

		d2 := 0.0
		for k := range p0 {
			dp := rep.Momentum[i][k] - p0[k]
			d2 += dp * dp
		}
		rep.MomentumDrift = math.Max(rep.MomentumDrift, math.Sqrt(d2))
	}

	return rep
}
