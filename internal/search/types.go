package search

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownKind = errors.New("search: unknown algorithm")

type Kind int

const (
	Binary Kind = iota
	Linear
)

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Interval is the playback cadence for traces of this kind.
func (k Kind) Interval() time.Duration {
	if k == Binary {
		return 1500 * time.Millisecond
	}
	return 1000 * time.Millisecond
}

func (k Kind) RequiresSorted() bool { return k == Binary }

func (k Kind) Generate(seq []int, target int) Trace {
	if k == Binary {
		return BinarySearch(seq, target)
	}
	return LinearSearch(seq, target)
}

func Kinds() []Kind { return []Kind{Binary, Linear} }

func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary", "binary-search", "binary_search":
		return Binary, nil
	case "linear", "linear-search", "linear_search":
		return Linear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Mark tells a renderer how one element of the sequence relates to a step.
type Mark int

const (
	MarkIdle Mark = iota
	MarkWindow
	MarkDiscarded
	MarkProbe
	MarkFound
	MarkVisited
)

func (m Mark) String() string {
	return [...]string{"idle", "window", "discarded", "probe", "found", "visited"}[m]
}

type Step interface {
	Describe() string
	IsFound() bool
	// IsTerminal reports whether the step concludes the search.
	IsTerminal() bool
	Mark(index int) Mark
}

type BinaryStep struct {
	Left       int    `json:"left"`
	Right      int    `json:"right"`
	Mid        int    `json:"mid"`
	Found      bool   `json:"found"`
	Comparison string `json:"comparison"`
}

func (s BinaryStep) Describe() string { return s.Comparison }
func (s BinaryStep) IsFound() bool    { return s.Found }
func (s BinaryStep) IsTerminal() bool { return s.Found || s.Mid == -1 }

func (s BinaryStep) Mark(index int) Mark {
	switch {
	case index == s.Mid && s.Found:
		return MarkFound
	case index == s.Mid:
		return MarkProbe
	case index >= s.Left && index <= s.Right:
		return MarkWindow
	default:
		return MarkDiscarded
	}
}

type LinearStep struct {
	CurrentIndex int    `json:"current_index"`
	Found        bool   `json:"found"`
	Comparison   string `json:"comparison"`
}

func (s LinearStep) Describe() string { return s.Comparison }
func (s LinearStep) IsFound() bool    { return s.Found }
func (s LinearStep) IsTerminal() bool { return s.Found || s.CurrentIndex == -1 }

func (s LinearStep) Mark(index int) Mark {
	switch {
	case index == s.CurrentIndex && s.Found:
		return MarkFound
	case index == s.CurrentIndex:
		return MarkProbe
	case index < s.CurrentIndex:
		return MarkVisited
	default:
		return MarkIdle
	}
}

// Trace is an immutable, fully materialized run of one generator.
type Trace struct {
	kind   Kind
	seq    []int
	target int
	steps  []Step
}

func newTrace(kind Kind, seq []int, target int, steps []Step) Trace {
	c := make([]int, len(seq))
	copy(c, seq)
	return Trace{kind: kind, seq: c, target: target, steps: steps}
}

func (t Trace) Kind() Kind    { return t.kind }
func (t Trace) Target() int   { return t.target }
func (t Trace) Len() int      { return len(t.steps) }
func (t Trace) Empty() bool   { return len(t.steps) == 0 }
func (t Trace) At(i int) Step { return t.steps[i] }

func (t Trace) Last() (Step, bool) {
	if len(t.steps) == 0 {
		return nil, false
	}
	return t.steps[len(t.steps)-1], true
}

func (t Trace) Found() bool {
	last, ok := t.Last()
	return ok && last.IsFound()
}

func (t Trace) Steps() []Step {
	c := make([]Step, len(t.steps))
	copy(c, t.steps)
	return c
}

func (t Trace) Sequence() []int {
	c := make([]int, len(t.seq))
	copy(c, t.seq)
	return c
}
