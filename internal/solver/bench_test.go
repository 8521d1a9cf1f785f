package solver

import (
	"testing"

	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

type benchSystem struct{}

func (b *benchSystem) Dim() int { return 2 }
func (b *benchSystem) Derive(x dynamics.State, t float64) dynamics.State {
	return dynamics.State{x[1], -x[0]}
}

func BenchmarkEuler(b *testing.B) {
	stepper := NewEuler()
	sys := &benchSystem{}
	x := dynamics.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = stepper.Step(sys, x, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	stepper := NewRK4()
	sys := &benchSystem{}
	x := dynamics.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = stepper.Step(sys, x, 0, 0.01)
	}
}

func BenchmarkRK45(b *testing.B) {
	stepper := NewRK45()
	sys := &benchSystem{}
	x := dynamics.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = stepper.Step(sys, x, 0, 0.01)
	}
}
