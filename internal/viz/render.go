package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CompProgTools/Algoview/internal/playback"
	"github.com/CompProgTools/Algoview/internal/search"
)

type Renderer struct {
	theme Theme
	st    styles
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme, st: newStyles(theme)}
}

func (r *Renderer) Theme() Theme { return r.theme }

func (r *Renderer) SetTheme(t Theme) {
	r.theme = t
	r.st = newStyles(t)
}

func (r *Renderer) Title(text string) string { return r.st.title.Render(text) }

// Cells draws seq as one cell per value with its index underneath. A nil
// step draws every cell idle.
func (r *Renderer) Cells(seq []int, step search.Step) string {
	if len(seq) == 0 {
		return r.st.subtle.Render("(empty sequence)")
	}
	cols := make([]string, len(seq))
	for i, v := range seq {
		mark := search.MarkIdle
		if step != nil {
			mark = step.Mark(i)
		}
		cell := r.st.cells[mark].Render(strconv.Itoa(v))
		idx := r.st.subtle.Width(lipgloss.Width(cell)).Align(lipgloss.Center).Render(strconv.Itoa(i))
		cols[i] = lipgloss.JoinVertical(lipgloss.Center, cell, idx)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// Detail describes the step's position: the window bounds for binary
// search, the checked index for linear search.
func (r *Renderer) Detail(step search.Step) string {
	if step == nil {
		return ""
	}
	lines := []string{step.Describe()}
	switch s := step.(type) {
	case search.BinaryStep:
		lines = append(lines, fmt.Sprintf("Left: %d, Right: %d", s.Left, s.Right))
		if s.Mid != -1 {
			lines = append(lines, fmt.Sprintf("Middle: %d", s.Mid))
		}
	case search.LinearStep:
		if s.CurrentIndex != -1 {
			lines = append(lines, fmt.Sprintf("Checking index: %d", s.CurrentIndex))
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) Status(snap playback.Snapshot) string {
	pos := fmt.Sprintf("step %d/%d", snap.Cursor+1, snap.Len)
	switch snap.Status() {
	case playback.Playing:
		return r.st.playing.Render("▶ playing") + "  " + r.st.label.Render(pos)
	case playback.Paused:
		return r.st.paused.Render("❚❚ paused") + "  " + r.st.label.Render(pos)
	case playback.Complete:
		return r.st.value.Render("■ complete") + "  " + r.st.label.Render(pos)
	default:
		return r.st.label.Render("○ ready") + "  " + r.st.label.Render(fmt.Sprintf("%d steps", snap.Len))
	}
}

// Progress shows how far a linear scan has reached. Binary steps and
// terminal misses have no progress line.
func (r *Renderer) Progress(seq []int, step search.Step, width int) string {
	s, ok := step.(search.LinearStep)
	if !ok || s.CurrentIndex == -1 || len(seq) == 0 {
		return ""
	}
	done := s.CurrentIndex + 1
	pct := float64(done) / float64(len(seq))
	return fmt.Sprintf("%s %d / %d", r.st.progressBar(pct, width), done, len(seq))
}

// Summary is the outcome panel shown once playback completes.
func (r *Renderer) Summary(tr search.Trace, snap playback.Snapshot) string {
	if !snap.Complete {
		return ""
	}
	var outcome string
	if snap.Step != nil && snap.Step.IsFound() {
		outcome = r.st.success.Render(fmt.Sprintf("Found %d!", tr.Target()))
	} else {
		outcome = r.st.failure.Render(fmt.Sprintf("%d not found", tr.Target()))
	}
	label := "Steps taken"
	if tr.Kind() == search.Linear {
		label = "Elements checked"
	}
	return outcome + "\n" + r.st.label.Render(fmt.Sprintf("%s: %d", label, tr.Len()))
}

// Info renders the how-it-works card of a catalog entry.
func (r *Renderer) Info(a search.Algorithm) string {
	var b strings.Builder
	b.WriteString(r.st.title.Render("How "+a.Name+" Works") + "\n")
	if a.Time != "" {
		fmt.Fprintf(&b, "%s %s\n", r.st.label.Render("Time Complexity:"), a.Time)
		fmt.Fprintf(&b, "%s %s\n", r.st.label.Render("Space Complexity:"), a.Space)
		fmt.Fprintf(&b, "%s %s\n", r.st.label.Render("Requirements:"), a.Requirements)
	}
	for i, s := range a.HowItWorks {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}
	return r.st.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (r *Renderer) Panel(content string) string { return r.st.panel.Render(content) }

func (r *Renderer) Separator(width int) string { return r.st.separator(width) }

func (r *Renderer) KeyHint(text string) string { return r.st.keyHint.Render(text) }

// StepLine is a one-line, uncolored description of step i for logs and
// plain terminals.
func StepLine(i, total int, step search.Step) string {
	return fmt.Sprintf("[%d/%d] %s", i+1, total, step.Describe())
}
