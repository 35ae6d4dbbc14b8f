package search

import (
	"errors"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"binary", Binary},
		{"Binary-Search", Binary},
		{" linear ", Linear},
		{"linear_search", Linear},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("bogo"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindInterval(t *testing.T) {
	if Binary.Interval() != 1500*time.Millisecond {
		t.Errorf("binary interval = %v", Binary.Interval())
	}
	if Linear.Interval() != time.Second {
		t.Errorf("linear interval = %v", Linear.Interval())
	}
}

func TestKindGenerate(t *testing.T) {
	if tr := Binary.Generate(classicSorted, 13); tr.Kind() != Binary || tr.Len() != 1 {
		t.Errorf("binary generate: kind=%s len=%d", tr.Kind(), tr.Len())
	}
	if tr := Linear.Generate(classicUnsorted, 5); tr.Kind() != Linear || tr.Len() != 5 {
		t.Errorf("linear generate: kind=%s len=%d", tr.Kind(), tr.Len())
	}
}

func TestBinaryStepMark(t *testing.T) {
	s := BinaryStep{Left: 2, Right: 6, Mid: 4}
	want := []Mark{MarkDiscarded, MarkDiscarded, MarkWindow, MarkWindow, MarkProbe, MarkWindow, MarkWindow, MarkDiscarded}
	for i, w := range want {
		if got := s.Mark(i); got != w {
			t.Errorf("index %d: expected %s, got %s", i, w, got)
		}
	}

	s.Found = true
	if got := s.Mark(4); got != MarkFound {
		t.Errorf("expected found mark, got %s", got)
	}
}

func TestLinearStepMark(t *testing.T) {
	s := LinearStep{CurrentIndex: 2}
	want := []Mark{MarkVisited, MarkVisited, MarkProbe, MarkIdle}
	for i, w := range want {
		if got := s.Mark(i); got != w {
			t.Errorf("index %d: expected %s, got %s", i, w, got)
		}
	}

	terminal := LinearStep{CurrentIndex: -1}
	if got := terminal.Mark(0); got != MarkIdle {
		t.Errorf("terminal step: expected idle, got %s", got)
	}
}

func TestStepTerminal(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want bool
	}{
		{"binary probe", BinaryStep{Mid: 3}, false},
		{"binary found", BinaryStep{Mid: 3, Found: true}, true},
		{"binary miss", BinaryStep{Mid: -1}, true},
		{"linear probe", LinearStep{CurrentIndex: 0}, false},
		{"linear found", LinearStep{CurrentIndex: 0, Found: true}, true},
		{"linear miss", LinearStep{CurrentIndex: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.step.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
