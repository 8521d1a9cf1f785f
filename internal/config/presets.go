package config

import "sort"

// Presets are the canonical scenarios. Masses in kg, positions in m,
// velocities in m/s, except the dimensionless figure-eight (G=1).
var Presets = map[string]*Config{
	"two-body": {
		Scenario: "two-body",
		G:        6.67428e-11,
		TimeSpan: 36,
		Samples:  404,
		Bodies: []BodyConfig{
			{
				Name: "a", Mass: 1e9,
				Position: []float64{-0.5, 0}, Velocity: []float64{0.02, 0.1},
				Radius: 0.125, Color: "dodgerblue", ColorGradient: "mediumseagreen",
			},
			{
				Name: "b", Mass: 1e5,
				Position: []float64{0.5, 0}, Velocity: []float64{-0.08, -0.06},
				Radius: 0.1, Color: "darkred", ColorGradient: "crimson",
			},
		},
	},
	"two-body-3d": {
		Scenario: "two-body-3d",
		G:        6.67428e-11,
		TimeSpan: 480,
		Samples:  600,
		Bodies: []BodyConfig{
			{
				Name: "a", Mass: 1e9,
				Position: []float64{-0.5, 0, 1}, Velocity: []float64{0.02, 0.1, 0.04},
				Radius: 0.125, Color: "dodgerblue", ColorGradient: "mediumseagreen",
			},
			{
				Name: "b", Mass: 1e5,
				Position: []float64{0.5, 0, -1}, Velocity: []float64{0.08, -0.1, 0.04},
				Radius: 0.1, Color: "darkred", ColorGradient: "crimson",
			},
		},
	},
	// Chenciner-Montgomery figure-eight choreography, dimensionless units.
	"figure-eight": {
		Scenario: "figure-eight",
		G:        1,
		TimeSpan: 20,
		Samples:  800,
		Bodies: []BodyConfig{
			{
				Name: "a", Mass: 1,
				Position: []float64{-0.97000436, 0.24308753},
				Velocity: []float64{-0.93240737 / 2, -0.86473146 / 2},
				Color:    "dodgerblue",
			},
			{
				Name: "b", Mass: 1,
				Position: []float64{0.97000436, -0.24308753},
				Velocity: []float64{-0.93240737 / 2, -0.86473146 / 2},
				Color:    "darkorange",
			},
			{
				Name: "c", Mass: 1,
				Position: []float64{0, 0},
				Velocity: []float64{0.93240737, 0.86473146},
				Color:    "mediumseagreen",
			},
		},
	},
	"three-body-3d": {
		Scenario: "three-body-3d",
		G:        6.67428e-11,
		TimeSpan: 200,
		Samples:  500,
		Bodies: []BodyConfig{
			{
				Name: "a", Mass: 1e8,
				Position: []float64{0.1, 0.0, 0.4}, Velocity: []float64{0.02, -0.02, 0.08},
				Color: "dodgerblue",
			},
			{
				Name: "b", Mass: 6e7,
				Position: []float64{0.2, 0.1, 0.0}, Velocity: []float64{0.1, 0.1, -0.02},
				Color: "darkorange",
			},
			{
				Name: "c", Mass: 1e8,
				Position: []float64{-0.1, 0.0, -0.1}, Velocity: []float64{-0.04, -0.175, -0.01},
				Color: "mediumseagreen",
			},
		},
	},
}

// GetPreset returns a copy of the named preset, so callers can override
// fields without mutating the shared table.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Bodies = append([]BodyConfig(nil), p.Bodies...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
