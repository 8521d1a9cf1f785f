package body

import (
	"fmt"

	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

// Registry holds the ordered, validated set of bodies for one simulation.
// Order defines the index mapping into the flattened state vector and is
// preserved end to end. A Registry is immutable after construction.
//
// State layout: all positions body-major, then all velocities body-major:
//
//	[r0 r1 ... r(n-1) v0 v1 ... v(n-1)], each block dim components wide.
type Registry struct {
	bodies []Body
	dim    int
}

// NewRegistry validates the descriptors and returns a registry over
// defensive copies of them. At least two bodies are required, masses must
// be positive, names unique, and every position/velocity vector must share
// one dimensionality of 2 or 3.
func NewRegistry(bodies []Body) (*Registry, error) {
	if len(bodies) < 2 {
		return nil, &ValidationError{Reason: fmt.Sprintf("need at least 2 bodies, got %d", len(bodies))}
	}

	dim := len(bodies[0].Position)
	if dim != 2 && dim != 3 {
		return nil, &ValidationError{Body: bodies[0].Name, Reason: fmt.Sprintf("unsupported dimensionality %d (want 2 or 3)", dim)}
	}

	seen := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if b.Mass <= 0 {
			return nil, &ValidationError{Body: b.Name, Reason: fmt.Sprintf("mass must be positive, got %g", b.Mass)}
		}
		if len(b.Position) != dim {
			return nil, &ValidationError{Body: b.Name, Reason: fmt.Sprintf("position has %d components, want %d", len(b.Position), dim)}
		}
		if len(b.Velocity) != dim {
			return nil, &ValidationError{Body: b.Name, Reason: fmt.Sprintf("velocity has %d components, want %d", len(b.Velocity), dim)}
		}
		if seen[b.Name] {
			return nil, &ValidationError{Body: b.Name, Reason: "duplicate name"}
		}
		seen[b.Name] = true
	}

	copied := make([]Body, len(bodies))
	for i, b := range bodies {
		copied[i] = Body{
			Name:     b.Name,
			Mass:     b.Mass,
			Position: append([]float64(nil), b.Position...),
			Velocity: append([]float64(nil), b.Velocity...),
			Meta:     b.Meta,
		}
	}

	return &Registry{bodies: copied, dim: dim}, nil
}

func (r *Registry) Len() int { return len(r.bodies) }
func (r *Registry) Dim() int { return r.dim }

// StateDim is the length of the flattened state vector, 2*n*dim.
func (r *Registry) StateDim() int { return 2 * len(r.bodies) * r.dim }

func (r *Registry) Masses() []float64 {
	m := make([]float64, len(r.bodies))
	for i, b := range r.bodies {
		m[i] = b.Mass
	}
	return m
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.bodies))
	for i, b := range r.bodies {
		names[i] = b.Name
	}
	return names
}

// Bodies returns a copy of the registry's bodies for presentation use.
func (r *Registry) Bodies() []Body {
	out := make([]Body, len(r.bodies))
	for i, b := range r.bodies {
		out[i] = Body{
			Name:     b.Name,
			Mass:     b.Mass,
			Position: append([]float64(nil), b.Position...),
			Velocity: append([]float64(nil), b.Velocity...),
			Meta:     b.Meta,
		}
	}
	return out
}

// InitialState encodes every body's initial position then velocity into a
// fresh state vector. Pure reshaping: Decode(InitialState()) reproduces the
// inputs bit for bit.
func (r *Registry) InitialState() dynamics.State {
	n, d := len(r.bodies), r.dim
	s := make(dynamics.State, 2*n*d)
	for i, b := range r.bodies {
		copy(s[i*d:(i+1)*d], b.Position)
		copy(s[n*d+i*d:n*d+(i+1)*d], b.Velocity)
	}
	return s
}

// Decode splits a state vector into per-body positions and velocities in
// registry order. The returned slices are copies and do not alias s.
func (r *Registry) Decode(s dynamics.State) ([]BodyState, error) {
	n, d := len(r.bodies), r.dim
	if len(s) != 2*n*d {
		return nil, &ShapeError{Want: 2 * n * d, Got: len(s)}
	}

	out := make([]BodyState, n)
	for i, b := range r.bodies {
		out[i] = BodyState{
			Name:     b.Name,
			Position: append([]float64(nil), s[i*d:(i+1)*d]...),
			Velocity: append([]float64(nil), s[n*d+i*d:n*d+(i+1)*d]...),
		}
	}
	return out, nil
}
