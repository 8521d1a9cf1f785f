package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Warn = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// namedColors maps the CSS color names the scenario files use onto
// truecolor values lipgloss understands.
var namedColors = map[string]string{
	"dodgerblue":     "#1e90ff",
	"darkred":        "#8b0000",
	"crimson":        "#dc143c",
	"mediumseagreen": "#3cb371",
	"darkorange":     "#ff8c00",
	"tomato":         "#ff6347",
	"limegreen":      "#32cd32",
	"gold":           "#ffd700",
	"navy":           "#000080",
	"slategray":      "#708090",
}

var fallbackPalette = []string{"#636ef9", "#ef553b", "#00cc96", "#ab63fa"}

// BodyStyle returns a foreground style for a body's configured color. An
// unknown or empty name falls back to a stable palette entry.
func BodyStyle(color string) lipgloss.Style {
	if hex, ok := namedColors[color]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	if color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fallbackPalette[0]))
}
