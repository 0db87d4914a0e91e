package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rohit242003/timesheet-dashboard/internal/timesheet"
)

const barWidth = 32

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

// renderBars draws one chart dataset as horizontal bars scaled to the
// largest value.
func renderBars(points []timesheet.ChartPoint) string {
	if len(points) == 0 {
		return dimStyle.Render("No data yet.")
	}

	var max float64
	labelWidth := 0
	for _, p := range points {
		if p.Hours > max {
			max = p.Hours
		}
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
	}

	var b strings.Builder
	for _, p := range points {
		width := 0
		if max > 0 {
			width = int(p.Hours / max * barWidth)
		}
		if width == 0 && p.Hours > 0 {
			width = 1
		}
		fmt.Fprintf(&b, "%-*s %s %.1f\n",
			labelWidth, p.Label,
			barStyle.Render(strings.Repeat("█", width)),
			p.Hours)
	}
	return strings.TrimRight(b.String(), "\n")
}
