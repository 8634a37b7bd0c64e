package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// interval bar colors: narrow, medium, wide
	barNarrow = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	barMid    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	barWide   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// IntervalBar draws [lo, hi] inside the axis [min, max] using width cells.
// The bar is colored by the share of the axis it covers.
func IntervalBar(lo, hi, min, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	span := max - min
	if span <= 0 {
		return barNarrow.Render(strings.Repeat("│", width))
	}

	start := int((lo - min) / span * float64(width))
	end := int((hi-min)/span*float64(width) + 0.5)
	start = clamp(start, 0, width-1)
	end = clamp(end, start+1, width)

	bar := strings.Repeat("░", start) + strings.Repeat("█", end-start) + strings.Repeat("░", width-end)
	share := (hi - lo) / span
	switch {
	case share > 0.6:
		return barWide.Render(bar)
	case share > 0.2:
		return barMid.Render(bar)
	}
	return barNarrow.Render(bar)
}

// Separator is a muted horizontal rule.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", width))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
