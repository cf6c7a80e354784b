package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styleSet struct {
	panel     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	muted     lipgloss.Style
	value     lipgloss.Style
	active    lipgloss.Style
	hotGraph  lipgloss.Style
	coldGraph lipgloss.Style
	warning   lipgloss.Style
	help      lipgloss.Style
}

// styles are rebuilt from CurrentTheme on every render so theme changes
// apply immediately.
func styles() styleSet {
	t := CurrentTheme
	return styleSet{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(20),
		muted:     lipgloss.NewStyle().Foreground(t.Muted),
		value:     lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		active:    lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		hotGraph:  lipgloss.NewStyle().Foreground(t.Hot),
		coldGraph: lipgloss.NewStyle().Foreground(t.Cold),
		warning:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		help:      lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// ProgressBar renders a bar filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Separator draws a muted horizontal rule.
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return styles().help.Render(left + " ◆ " + right)
}
