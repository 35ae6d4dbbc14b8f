// Package export renders traces as standalone SVG documents.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CompProgTools/Algoview/internal/search"
	"github.com/CompProgTools/Algoview/internal/viz"
)

const (
	cellSize = 36
	cellGap  = 4
	rowGap   = 14
	padding  = 16
	textGap  = 24
	charW    = 7.5
)

func markFill(t viz.Theme, m search.Mark) lipgloss.Color {
	switch m {
	case search.MarkWindow:
		return t.Secondary
	case search.MarkProbe:
		return t.Warning
	case search.MarkFound:
		return t.Success
	case search.MarkDiscarded, search.MarkVisited:
		return t.Muted
	default:
		return t.Primary
	}
}

// TraceSVG draws every step of tr as one row of cells colored by mark,
// with the step's comparison text to the right.
func TraceSVG(tr search.Trace, theme viz.Theme) string {
	seq := tr.Sequence()
	steps := tr.Steps()

	longest := 0
	for _, s := range steps {
		longest = max(longest, len(s.Describe()))
	}
	cellsW := len(seq) * (cellSize + cellGap)
	width := padding*2 + cellsW + textGap + int(float64(longest)*charW)
	rows := max(len(steps), 1)
	height := padding*2 + rows*(cellSize+rowGap)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="13">
`, width, height, width, height))

	if len(steps) == 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s">no steps</text>
`, padding, padding+cellSize/2, theme.Muted))
	}

	for row, st := range steps {
		y := padding + row*(cellSize+rowGap)
		for i, v := range seq {
			x := padding + i*(cellSize+cellGap)
			fill := markFill(theme, st.Mark(i))
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s"/>
<text x="%d" y="%d" fill="#0a0a0a" text-anchor="middle">%d</text>
`, x, y, cellSize, cellSize, fill, x+cellSize/2, y+cellSize/2+5, v))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s">%s</text>
`, padding+cellsW+textGap, y+cellSize/2+5, theme.Text, html.EscapeString(st.Describe())))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WindowSVG plots the per-step window width of tr as a line. It returns
// "" when the trace has fewer than two steps.
func WindowSVG(tr search.Trace, width, height int, strokeColor string) string {
	data := viz.WindowSeries(tr)
	if len(data) < 2 {
		return ""
	}

	maxY := data[0]
	for _, v := range data {
		maxY = max(maxY, v)
	}
	if maxY == 0 {
		maxY = 1
	}
	maxY *= 1.1
	stepX := float64(width) / float64(len(data)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range data {
		x := float64(i) * stepX
		y := float64(height) - v/maxY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
