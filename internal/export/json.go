package export

import (
	"encoding/json"
	"io"

	"github.com/lalithu/Classical-TwoBody/internal/orbit"
	"github.com/lalithu/Classical-TwoBody/internal/store"
)

// BodySeries is one body's full position/velocity history plus its
// presentation metadata, passed through untouched.
type BodySeries struct {
	Name          string      `json:"name"`
	Mass          float64     `json:"mass"`
	Radius        float64     `json:"radius,omitempty"`
	Color         string      `json:"color,omitempty"`
	ColorGradient string      `json:"color_gradient,omitempty"`
	Position      [][]float64 `json:"position"`
	Velocity      [][]float64 `json:"velocity"`
}

type Document struct {
	Scenario  string       `json:"scenario"`
	G         float64      `json:"g"`
	TimeSpan  float64      `json:"time_span"`
	Dim       int          `json:"dim"`
	Truncated bool         `json:"truncated,omitempty"`
	Times     []float64    `json:"times"`
	Bodies    []BodySeries `json:"bodies"`
}

// JSON writes the trajectory as a self-contained document consumable by
// external plotting without knowledge of the state-vector layout.
func JSON(w io.Writer, meta *store.RunMetadata, tr *orbit.Trajectory) error {
	doc := Document{
		Scenario:  meta.Scenario,
		G:         meta.G,
		TimeSpan:  meta.TimeSpan,
		Dim:       tr.Dim,
		Truncated: tr.Truncated,
		Times:     tr.Times,
		Bodies:    make([]BodySeries, len(tr.Names)),
	}

	for b := range tr.Names {
		series := BodySeries{
			Name:     tr.Names[b],
			Position: make([][]float64, tr.Len()),
			Velocity: make([][]float64, tr.Len()),
		}
		if b < len(meta.Bodies) {
			series.Mass = meta.Bodies[b].Mass
			series.Radius = meta.Bodies[b].Radius
			series.Color = meta.Bodies[b].Color
			series.ColorGradient = meta.Bodies[b].ColorGradient
		}
		n, d := len(tr.Names), tr.Dim
		for i, s := range tr.States {
			series.Position[i] = append([]float64(nil), s[b*d:(b+1)*d]...)
			series.Velocity[i] = append([]float64(nil), s[n*d+b*d:n*d+(b+1)*d]...)
		}
		doc.Bodies[b] = series
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
