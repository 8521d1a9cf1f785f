package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lalithu/Classical-TwoBody/internal/body"
	"github.com/lalithu/Classical-TwoBody/internal/orbit"
)

// BodyConfig describes one body in a simulation file. Radius, color and
// color_gradient are presentation metadata passed through to plotting.
type BodyConfig struct {
	Name          string    `yaml:"name"`
	Mass          float64   `yaml:"mass"`
	Position      []float64 `yaml:"position"`
	Velocity      []float64 `yaml:"velocity"`
	Radius        float64   `yaml:"radius,omitempty"`
	Color         string    `yaml:"color,omitempty"`
	ColorGradient string    `yaml:"color_gradient,omitempty"`
}

type Config struct {
	Scenario  string       `yaml:"scenario,omitempty"`
	G         float64      `yaml:"g"`
	TimeSpan  float64      `yaml:"time_span"`
	Samples   int          `yaml:"samples"`
	Tolerance float64      `yaml:"tolerance,omitempty"`
	Softening float64      `yaml:"softening,omitempty"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

func DefaultConfig() *Config {
	return &Config{
		G:         orbit.GravitationalConstant,
		TimeSpan:  10.0,
		Samples:   orbit.DefaultSamples,
		Tolerance: 1e-9,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Registry builds the validated body registry described by the file.
func (c *Config) Registry() (*body.Registry, error) {
	bodies := make([]body.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = body.Body{
			Name:     b.Name,
			Mass:     b.Mass,
			Position: b.Position,
			Velocity: b.Velocity,
			Meta: body.Meta{
				Radius:        b.Radius,
				Color:         b.Color,
				ColorGradient: b.ColorGradient,
			},
		}
	}
	return body.NewRegistry(bodies)
}

// OrbitConfig maps the file's run parameters onto the integrator config.
func (c *Config) OrbitConfig() orbit.Config {
	oc := orbit.DefaultConfig()
	oc.G = c.G
	oc.TimeSpan = c.TimeSpan
	if c.Samples >= 2 {
		oc.Samples = c.Samples
	}
	if c.Tolerance > 0 {
		oc.Tol = c.Tolerance
	}
	oc.Softening = c.Softening
	return oc
}
