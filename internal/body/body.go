package body

// Meta carries presentation-only attributes. The integrator never reads
// these; they pass through to plotting and export untouched.
type Meta struct {
	Radius        float64
	Color         string
	ColorGradient string
}

// Body is one simulated point mass. Position and Velocity must have the
// same length (2 or 3), uniform across a simulation.
type Body struct {
	Name     string
	Mass     float64
	Position []float64
	Velocity []float64
	Meta     Meta
}

// BodyState is one body's decoded position and velocity at a single instant.
type BodyState struct {
	Name     string
	Position []float64
	Velocity []float64
}
