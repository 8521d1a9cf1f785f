package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lalithu/Classical-TwoBody/internal/config"
	"github.com/lalithu/Classical-TwoBody/internal/dynamics"
	"github.com/lalithu/Classical-TwoBody/internal/orbit"
	"github.com/lalithu/Classical-TwoBody/internal/store"
)

func sampleRun() (*store.RunMetadata, *orbit.Trajectory) {
	meta := &store.RunMetadata{
		Scenario: "two-body",
		G:        1,
		TimeSpan: 1,
		Dim:      2,
		Bodies: []config.BodyConfig{
			{Name: "a", Mass: 2, Color: "crimson"},
			{Name: "b", Mass: 1},
		},
	}
	tr := &orbit.Trajectory{
		Times: []float64{0, 0.5, 1},
		States: []dynamics.State{
			{-1, 0, 1, 0, 0, 0.5, 0, -0.5},
			{-0.9, 0.1, 0.9, -0.1, 0.1, 0.5, -0.1, -0.5},
			{-0.8, 0.2, 0.8, -0.2, 0.2, 0.4, -0.2, -0.4},
		},
		Names: []string{"a", "b"},
		Dim:   2,
	}
	return meta, tr
}

func TestJSONDocument(t *testing.T) {
	meta, tr := sampleRun()

	var buf bytes.Buffer
	if err := JSON(&buf, meta, tr); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Scenario != "two-body" || doc.Dim != 2 {
		t.Errorf("header fields not carried over: %+v", doc)
	}
	if len(doc.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(doc.Bodies))
	}

	a := doc.Bodies[0]
	if a.Name != "a" || a.Mass != 2 || a.Color != "crimson" {
		t.Errorf("body metadata not carried over: %+v", a)
	}
	if len(a.Position) != 3 || len(a.Velocity) != 3 {
		t.Fatalf("series lengths: %d positions, %d velocities", len(a.Position), len(a.Velocity))
	}
	if a.Position[0][0] != -1 || a.Velocity[0][1] != 0.5 {
		t.Errorf("state layout decoded wrong: pos=%v vel=%v", a.Position[0], a.Velocity[0])
	}
	if doc.Bodies[1].Position[2][0] != 0.8 {
		t.Errorf("second body positions wrong: %v", doc.Bodies[1].Position[2])
	}
}

func TestSVGPaths(t *testing.T) {
	meta, tr := sampleRun()

	out := SVG(meta, tr, 640, 480)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if n := strings.Count(out, "<polyline"); n != 2 {
		t.Errorf("expected one polyline per body, got %d", n)
	}
	if !strings.Contains(out, `stroke="crimson"`) {
		t.Error("configured body color not used")
	}
	if !strings.Contains(out, "<title>b</title>") {
		t.Error("final-position marker missing body name")
	}
}

func TestSVGDegenerate(t *testing.T) {
	meta, tr := sampleRun()
	tr.Times = tr.Times[:1]
	tr.States = tr.States[:1]

	if out := SVG(meta, tr, 640, 480); out != "" {
		t.Error("expected empty output for a single-sample trajectory")
	}
}
