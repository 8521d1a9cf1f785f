package dynamics

import "errors"

// Domain errors for integration.
var (
	// ErrNonFiniteState indicates a state vector containing NaN or Inf,
	// typically from a near-zero body separation with no softening.
	ErrNonFiniteState = errors.New("dynamics: non-finite state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive timestep collapsed below the
	// configured minimum.
	ErrStepTooSmall = errors.New("dynamics: adaptive timestep below minimum")
)
