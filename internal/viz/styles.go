package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CompProgTools/Algoview/internal/search"
)

type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	panel    lipgloss.Style
	playing  lipgloss.Style
	paused   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	keyHint  lipgloss.Style
	cells    map[search.Mark]lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles(t Theme) styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Align(lipgloss.Center).
		Width(4)

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		label:   lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		playing: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		success: lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		failure: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		keyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		cells: map[search.Mark]lipgloss.Style{
			search.MarkIdle:      cell.BorderForeground(t.Muted).Foreground(t.Text),
			search.MarkWindow:    cell.BorderForeground(t.Secondary).Foreground(t.Secondary),
			search.MarkDiscarded: cell.BorderForeground(t.Muted).Foreground(t.Muted).Faint(true),
			search.MarkProbe:     cell.BorderForeground(t.Warning).Foreground(t.Warning).Bold(true),
			search.MarkFound:     cell.BorderForeground(t.Success).Foreground(t.Success).Bold(true),
			search.MarkVisited:   cell.BorderForeground(t.Muted).Foreground(t.Muted),
		},
		barFull:  lipgloss.NewStyle().Foreground(t.Accent),
		barEmpty: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// progressBar renders a bar filled to percent of width.
func (s styles) progressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.barFull.Render(strings.Repeat("█", filled)) + s.barEmpty.Render(strings.Repeat("░", width-filled))
}

// separator draws a decorative rule of the given width.
func (s styles) separator(width int) string {
	if width < 8 {
		return s.subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.subtle.Render(left + " ◆ " + right)
}
