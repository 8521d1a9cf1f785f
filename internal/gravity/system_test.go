package gravity

import (
	"math"
	"testing"

	"github.com/lalithu/Classical-TwoBody/internal/body"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
)

const testG = 6.67428e-11

func mustRegistry(t *testing.T, bodies []body.Body) *body.Registry {
	t.Helper()
	reg, err := body.NewRegistry(bodies)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func twoBodyRegistry(t *testing.T) *body.Registry {
	return mustRegistry(t, []body.Body{
		{Name: "a", Mass: 1e10, Position: []float64{-0.5, 0}, Velocity: []float64{0.02, 0.1}},
		{Name: "b", Mass: 1e6, Position: []float64{0.5, 0}, Velocity: []float64{-0.08, -0.06}},
	})
}

func TestDerive_TwoBodyReduction(t *testing.T) {
	reg := twoBodyRegistry(t)
	sys := NewSystem(reg, testG)

	x := reg.InitialState()
	dx := sys.Derive(x, 0)

	// dr/dt is the velocity pass-through
	for i := 0; i < 4; i++ {
		if dx[i] != x[4+i] {
			t.Errorf("position derivative %d: got %g, want %g", i, dx[i], x[4+i])
		}
	}

	// acceleration of a: G*m_b*(r_b-r_a)/|r_b-r_a|^3, separation 1 along x
	wantAx := testG * 1e6 * 1.0
	if math.Abs(dx[4]-wantAx) > 1e-20 {
		t.Errorf("a_x for body a: got %g, want %g", dx[4], wantAx)
	}
	if dx[5] != 0 {
		t.Errorf("a_y for body a: got %g, want 0", dx[5])
	}

	wantBx := -testG * 1e10 * 1.0
	if math.Abs(dx[6]-wantBx) > 1e-15 {
		t.Errorf("a_x for body b: got %g, want %g", dx[6], wantBx)
	}
}

func TestDerive_OffAxisState(t *testing.T) {
	reg := twoBodyRegistry(t)
	sys := NewSystem(reg, testG)

	// non-trivial state, not the initial one
	x := dynamics.State{-0.3, 0.2, 0.4, -0.1, 0.01, 0.02, -0.03, 0.04}
	dx := sys.Derive(x, 0)

	rx, ry := x[2]-x[0], x[3]-x[1]
	r := math.Sqrt(rx*rx + ry*ry)
	r3 := r * r * r

	wantAx := testG * 1e6 * rx / r3
	wantAy := testG * 1e6 * ry / r3
	if math.Abs(dx[4]-wantAx) > 1e-18 || math.Abs(dx[5]-wantAy) > 1e-18 {
		t.Errorf("body a acceleration: got (%g, %g), want (%g, %g)", dx[4], dx[5], wantAx, wantAy)
	}

	wantBx := -testG * 1e10 * rx / r3
	wantBy := -testG * 1e10 * ry / r3
	if math.Abs(dx[6]-wantBx) > 1e-14 || math.Abs(dx[7]-wantBy) > 1e-14 {
		t.Errorf("body b acceleration: got (%g, %g), want (%g, %g)", dx[6], dx[7], wantBx, wantBy)
	}
}

func TestDerive_NetForceIsZero(t *testing.T) {
	reg := mustRegistry(t, []body.Body{
		{Name: "a", Mass: 2.0, Position: []float64{0.1, 0.0, 0.4}, Velocity: []float64{0.02, -0.02, 0.08}},
		{Name: "b", Mass: 3.0, Position: []float64{0.2, 0.1, 0.0}, Velocity: []float64{0.1, 0.1, -0.02}},
		{Name: "c", Mass: 5.0, Position: []float64{-0.1, 0.0, -0.1}, Velocity: []float64{-0.04, -0.175, -0.01}},
	})
	sys := NewSystem(reg, 1.0)

	x := reg.InitialState()
	dx := sys.Derive(x, 0)

	masses := reg.Masses()
	for k := 0; k < 3; k++ {
		sum := 0.0
		for i := 0; i < 3; i++ {
			sum += masses[i] * dx[9+i*3+k]
		}
		if math.Abs(sum) > 1e-12 {
			t.Errorf("net force component %d: got %g, want ~0", k, sum)
		}
	}
}

func TestDerive_ZeroSeparationIsNonFinite(t *testing.T) {
	reg := mustRegistry(t, []body.Body{
		{Name: "a", Mass: 1.0, Position: []float64{0, 0}, Velocity: []float64{0, 0}},
		{Name: "b", Mass: 1.0, Position: []float64{0, 0}, Velocity: []float64{0, 0}},
	})
	sys := NewSystem(reg, 1.0)

	dx := sys.Derive(reg.InitialState(), 0)
	if dx.IsValid() {
		t.Error("expected non-finite derivative at zero separation with no softening")
	}
}

func TestDerive_SofteningKeepsFinite(t *testing.T) {
	reg := mustRegistry(t, []body.Body{
		{Name: "a", Mass: 1.0, Position: []float64{0, 0}, Velocity: []float64{0, 0}},
		{Name: "b", Mass: 1.0, Position: []float64{0, 0}, Velocity: []float64{0, 0}},
	})
	sys := NewSystem(reg, 1.0)
	sys.Softening = 0.01

	dx := sys.Derive(reg.InitialState(), 0)
	if !dx.IsValid() {
		t.Error("expected finite derivative with softening enabled")
	}
}

func TestEnergy_TwoBody(t *testing.T) {
	reg := twoBodyRegistry(t)
	sys := NewSystem(reg, testG)

	x := reg.InitialState()
	got := sys.Energy(x)

	ke := 0.5*1e10*(0.02*0.02+0.1*0.1) + 0.5*1e6*(0.08*0.08+0.06*0.06)
	pe := -testG * 1e10 * 1e6 / 1.0
	want := ke + pe
	if math.Abs(got-want) > math.Abs(want)*1e-12 {
		t.Errorf("energy: got %g, want %g", got, want)
	}
}

func TestAngularMomentum_Shapes(t *testing.T) {
	reg2 := twoBodyRegistry(t)
	sys2 := NewSystem(reg2, testG)
	if l := sys2.AngularMomentum(reg2.InitialState()); len(l) != 1 {
		t.Errorf("2D angular momentum: got %d components, want 1", len(l))
	}

	reg3 := mustRegistry(t, []body.Body{
		{Name: "a", Mass: 1.0, Position: []float64{1, 0, 0}, Velocity: []float64{0, 1, 0}},
		{Name: "b", Mass: 1.0, Position: []float64{-1, 0, 0}, Velocity: []float64{0, -1, 0}},
	})
	sys3 := NewSystem(reg3, 1.0)
	l := sys3.AngularMomentum(reg3.InitialState())
	if len(l) != 3 {
		t.Fatalf("3D angular momentum: got %d components, want 3", len(l))
	}
	// both bodies circulate counterclockwise in the xy plane
	if l[0] != 0 || l[1] != 0 || l[2] != 2 {
		t.Errorf("angular momentum: got %v, want [0 0 2]", l)
	}
}

func TestMomentum(t *testing.T) {
	reg := twoBodyRegistry(t)
	sys := NewSystem(reg, testG)

	p := sys.Momentum(reg.InitialState())
	wantX := 1e10*0.02 + 1e6*-0.08
	wantY := 1e10*0.1 + 1e6*-0.06
	if math.Abs(p[0]-wantX) > 1e-9 || math.Abs(p[1]-wantY) > 1e-9 {
		t.Errorf("momentum: got %v, want [%g %g]", p, wantX, wantY)
	}
}
