package orbit

import (
	"context"

	"github.com/lalithu/Classical-TwoBody/internal/body"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
	"github.com/lalithu/Classical-TwoBody/internal/gravity"
	"github.com/lalithu/Classical-TwoBody/internal/solver"
)

// Integrate advances the registry's bodies across an evenly spaced grid of
// cfg.Samples times from 0 to cfg.TimeSpan inclusive and returns the
// resulting trajectory. The adaptive step is clamped so the state lands on
// every sample time exactly; the first sample is the initial state itself.
//
// On solver failure (non-finite state, step collapse, cancellation) the
// trajectory is truncated at the last completed sample and returned
// together with an *IntegrationError. The registry is never mutated; each
// call produces an independent Trajectory.
func Integrate(ctx context.Context, reg *body.Registry, cfg Config) (*Trajectory, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sys := gravity.NewSystem(reg, cfg.G)
	sys.Softening = cfg.Softening
	stepper := solver.NewRK45()

	n := cfg.Samples
	times := make([]float64, n)
	for k := 1; k < n-1; k++ {
		times[k] = cfg.TimeSpan * float64(k) / float64(n-1)
	}
	times[n-1] = cfg.TimeSpan

	interval := cfg.TimeSpan / float64(n-1)
	maxStep := cfg.MaxStep
	if maxStep <= 0 {
		maxStep = interval
	}
	minStep := cfg.MinStep
	if minStep <= 0 {
		minStep = 1e-12 * cfg.TimeSpan
	}

	x := reg.InitialState()
	tr := &Trajectory{
		Times:  make([]float64, 0, n),
		States: make([]dynamics.State, 0, n),
		Names:  reg.Names(),
		Dim:    reg.Dim(),
	}
	tr.Times = append(tr.Times, 0)
	tr.States = append(tr.States, x.Clone())

	truncate := func(t float64, sample int, cause error) (*Trajectory, error) {
		tr.Truncated = true
		return tr, &IntegrationError{Time: t, Sample: sample, Err: cause}
	}

	t := 0.0
	dt := interval / 16
	if dt > maxStep {
		dt = maxStep
	}

	for k := 1; k < n; k++ {
		target := times[k]

		for t < target {
			select {
			case <-ctx.Done():
				return truncate(t, k, ctx.Err())
			default:
			}

			h := dt
			landing := false
			if t+h >= target {
				h = target - t
				landing = true
			}

			xNew, dtNext, err := stepper.StepAdaptive(sys, x, t, h, cfg.Tol)
			if err != nil {
				return truncate(t, k, err)
			}
			if !xNew.IsValid() {
				return truncate(t, k, dynamics.ErrNonFiniteState)
			}

			x = xNew
			if landing {
				t = target
			} else {
				t += h
			}

			// A landing step is artificially short, so its suggested next
			// step says nothing about the dynamics; keep the cruising dt.
			if !landing {
				if dtNext > maxStep {
					dtNext = maxStep
				}
				if dtNext < minStep {
					return truncate(t, k, dynamics.ErrStepTooSmall)
				}
				dt = dtNext
			}
		}

		tr.Times = append(tr.Times, target)
		tr.States = append(tr.States, x.Clone())
	}

	return tr, nil
}
