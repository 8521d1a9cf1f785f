package export

import (
	"fmt"
	"strings"

	"github.com/lalithu/Classical-TwoBody/internal/orbit"
	"github.com/lalithu/Classical-TwoBody/internal/store"
)

var svgPalette = []string{"#636ef9", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a"}

// SVG renders the xy projection of every body's path as an SVG polyline,
// with a marker at each final position. Body colors come from the
// presentation metadata; bodies without one fall back to a palette.
func SVG(meta *store.RunMetadata, tr *orbit.Trajectory, width, height int) string {
	if tr.Len() < 2 {
		return ""
	}

	minX, maxX := tr.States[0][0], tr.States[0][0]
	minY, maxY := tr.States[0][1], tr.States[0][1]
	for b := range tr.Names {
		xs := tr.PositionSeries(b, 0)
		ys := tr.PositionSeries(b, 1)
		for i := range xs {
			minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
			minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	const margin = 20.0
	sx := (float64(width) - 2*margin) / spanX
	sy := (float64(height) - 2*margin) / spanY
	// y grows downward in SVG
	px := func(x float64) float64 { return margin + (x-minX)*sx }
	py := func(y float64) float64 { return float64(height) - margin - (y-minY)*sy }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#121922"/>
`, width, height, width, height))

	for b, name := range tr.Names {
		color := svgPalette[b%len(svgPalette)]
		if b < len(meta.Bodies) && meta.Bodies[b].Color != "" {
			color = meta.Bodies[b].Color
		}

		xs := tr.PositionSeries(b, 0)
		ys := tr.PositionSeries(b, 1)

		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="2" points="`, color))
		for i := range xs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.2f,%.2f", px(xs[i]), py(ys[i])))
		}
		sb.WriteString("\"/>\n")

		last := len(xs) - 1
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="5" fill="%s"><title>%s</title></circle>
`, px(xs[last]), py(ys[last]), color, name))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
