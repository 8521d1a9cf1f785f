package viz

import (
	"fmt"
	"strings"

	"github.com/lalithu/Classical-TwoBody/internal/orbit"
)

// Frame maps trajectory coordinates (xy projection for 3D runs) onto a
// braille canvas. Bounds cover the whole trajectory so that animation
// frames share one scale.
type Frame struct {
	canvas                   *Canvas
	minX, minY, spanX, spanY float64
}

func NewFrame(tr *orbit.Trajectory, width, height int) *Frame {
	f := &Frame{canvas: NewCanvas(width, height)}

	f.minX, f.minY = tr.States[0][0], tr.States[0][1]
	maxX, maxY := f.minX, f.minY
	for b := range tr.Names {
		xs := tr.PositionSeries(b, 0)
		ys := tr.PositionSeries(b, 1)
		for i := range xs {
			f.minX, maxX = min(f.minX, xs[i]), max(maxX, xs[i])
			f.minY, maxY = min(f.minY, ys[i]), max(maxY, ys[i])
		}
	}
	f.spanX = maxX - f.minX
	f.spanY = maxY - f.minY
	if f.spanX == 0 {
		f.spanX = 1
	}
	if f.spanY == 0 {
		f.spanY = 1
	}
	return f
}

func (f *Frame) dot(x, y float64) (int, int) {
	w := f.canvas.Width*2 - 1
	h := f.canvas.Height*4 - 1
	px := int((x - f.minX) / f.spanX * float64(w))
	// dot rows grow downward
	py := h - int((y-f.minY)/f.spanY*float64(h))
	return px, py
}

// DrawPaths traces every body's path through sample upto (exclusive;
// pass tr.Len() for the full trajectory).
func (f *Frame) DrawPaths(tr *orbit.Trajectory, upto int) {
	for b := range tr.Names {
		xs := tr.PositionSeries(b, 0)
		ys := tr.PositionSeries(b, 1)
		for i := 1; i < upto; i++ {
			x0, y0 := f.dot(xs[i-1], ys[i-1])
			x1, y1 := f.dot(xs[i], ys[i])
			f.canvas.DrawLine(x0, y0, x1, y1)
		}
	}
}

func (f *Frame) Clear()         { f.canvas.Clear() }
func (f *Frame) String() string { return f.canvas.String() }

// PlotTrajectory renders the full orbit trace with a colored legend.
func PlotTrajectory(tr *orbit.Trajectory, colors []string, width, height int) string {
	f := NewFrame(tr, width, height)
	f.DrawPaths(tr, tr.Len())

	var sb strings.Builder
	sb.WriteString(f.String())

	legend := make([]string, 0, len(tr.Names))
	for b, name := range tr.Names {
		color := ""
		if b < len(colors) {
			color = colors[b]
		}
		legend = append(legend, BodyStyle(color).Render(fmt.Sprintf("● %s", name)))
	}
	sb.WriteString(strings.Join(legend, "  ") + "\n")
	return sb.String()
}
