package metrics

import "github.com/CompProgTools/Algoview/internal/search"

type Metric interface {
	Name() string
	Observe(s search.Step, size int)
	Value() float64
	Reset()
}

func Default() []Metric {
	return []Metric{NewSteps(), NewComparisons(), NewWindow(), NewFound()}
}

// Collect replays tr through each metric and returns the values by name.
func Collect(tr search.Trace, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	size := len(tr.Sequence())
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i := 0; i < tr.Len(); i++ {
			m.Observe(tr.At(i), size)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// WindowWidth is the number of elements still in play at s: the binary
// bounds, or the unscanned tail for linear search. Terminal misses have
// width 0.
func WindowWidth(s search.Step, size int) int {
	switch st := s.(type) {
	case search.BinaryStep:
		if st.Mid < 0 {
			return 0
		}
		return st.Right - st.Left + 1
	case search.LinearStep:
		if st.CurrentIndex < 0 {
			return 0
		}
		return size - st.CurrentIndex
	}
	return 0
}

// probed reports whether s compared an element against the target.
func probed(s search.Step) bool {
	return s.IsFound() || !s.IsTerminal()
}
