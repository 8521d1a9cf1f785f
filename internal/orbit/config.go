package orbit

import "fmt"

// GravitationalConstant is the CODATA value of G in N m^2 kg^-2. It is a
// default only; every integration carries its own G in Config so that
// concurrent sweeps with different constants cannot interfere.
const GravitationalConstant = 6.674e-11

// DefaultSamples matches the sample grid of the canonical two-body
// scenario.
const DefaultSamples = 404

// Config holds the numeric parameters of one integration run.
type Config struct {
	G         float64
	TimeSpan  float64
	Samples   int
	Tol       float64
	MaxStep   float64
	MinStep   float64
	Softening float64
}

func DefaultConfig() Config {
	return Config{
		G:       GravitationalConstant,
		Samples: DefaultSamples,
		Tol:     1e-9,
		MinStep: 1e-12,
	}
}

func (c Config) validate() error {
	if c.G <= 0 {
		return fmt.Errorf("orbit: G must be positive, got %g", c.G)
	}
	if c.TimeSpan <= 0 {
		return fmt.Errorf("orbit: time span must be positive, got %g", c.TimeSpan)
	}
	if c.Samples < 2 {
		return fmt.Errorf("orbit: need at least 2 samples, got %d", c.Samples)
	}
	if c.Tol <= 0 {
		return fmt.Errorf("orbit: tolerance must be positive, got %g", c.Tol)
	}
	return nil
}
