package metrics

import "github.com/CompProgTools/Algoview/internal/search"

// Steps counts every step, the "steps taken" figure of the summary.
type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps { return &Steps{name: "steps"} }

func (m *Steps) Name() string                    { return m.name }
func (m *Steps) Observe(s search.Step, size int) { m.count++ }
func (m *Steps) Value() float64                  { return float64(m.count) }
func (m *Steps) Reset()                          { m.count = 0 }

type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons { return &Comparisons{name: "comparisons"} }

func (m *Comparisons) Name() string { return m.name }

func (m *Comparisons) Observe(s search.Step, size int) {
	if probed(s) {
		m.count++
	}
}

func (m *Comparisons) Value() float64 { return float64(m.count) }
func (m *Comparisons) Reset()         { m.count = 0 }

// Window reports the width of the last probed window.
type Window struct {
	name  string
	width int
	seen  bool
}

func NewWindow() *Window { return &Window{name: "window"} }

func (m *Window) Name() string { return m.name }

func (m *Window) Observe(s search.Step, size int) {
	if !m.seen {
		m.width = size
		m.seen = true
	}
	if probed(s) {
		m.width = WindowWidth(s, size)
	}
}

func (m *Window) Value() float64 { return float64(m.width) }

func (m *Window) Reset() {
	m.width = 0
	m.seen = false
}

type Found struct {
	name  string
	found bool
}

func NewFound() *Found { return &Found{name: "found"} }

func (m *Found) Name() string                    { return m.name }
func (m *Found) Observe(s search.Step, size int) { m.found = s.IsFound() }

func (m *Found) Value() float64 {
	if m.found {
		return 1
	}
	return 0
}

func (m *Found) Reset() { m.found = false }
