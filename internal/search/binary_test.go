package search

import (
	"reflect"
	"testing"
)

var classicSorted = []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25}

func binaryAt(t *testing.T, tr Trace, i int) BinaryStep {
	t.Helper()
	s, ok := tr.At(i).(BinaryStep)
	if !ok {
		t.Fatalf("step %d: expected BinaryStep, got %T", i, tr.At(i))
	}
	return s
}

func TestBinarySearchClassic(t *testing.T) {
	tr := BinarySearch(classicSorted, 13)

	if tr.Len() != 1 {
		t.Fatalf("expected 1 step, got %d", tr.Len())
	}
	want := BinaryStep{Left: 0, Right: 12, Mid: 6, Found: true, Comparison: "Found 13 at index 6!"}
	if got := binaryAt(t, tr, 0); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if tr.Kind() != Binary {
		t.Errorf("expected kind binary, got %s", tr.Kind())
	}
}

func TestBinarySearchEveryPresentTarget(t *testing.T) {
	for _, target := range classicSorted {
		tr := BinarySearch(classicSorted, target)
		last := binaryAt(t, tr, tr.Len()-1)
		if !last.Found {
			t.Errorf("target %d: last step not found", target)
			continue
		}
		if classicSorted[last.Mid] != target {
			t.Errorf("target %d: seq[mid]=%d", target, classicSorted[last.Mid])
		}
		for i := 0; i < tr.Len()-1; i++ {
			if tr.At(i).IsFound() {
				t.Errorf("target %d: step %d found before the end", target, i)
			}
		}
	}
}

func TestBinarySearchMissing(t *testing.T) {
	tests := []struct {
		name     string
		seq      []int
		target   int
		steps    int
		crossing int
	}{
		{"between elements", classicSorted, 14, 4, 7},
		{"below all", classicSorted, 0, 4, 0},
		{"above all", classicSorted, 100, 5, 13},
		{"single element", []int{5}, 3, 2, 0},
		{"empty", []int{}, 3, 1, 0},
		{"nil", nil, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := BinarySearch(tt.seq, tt.target)
			if tr.Len() != tt.steps {
				t.Fatalf("expected %d steps, got %d", tt.steps, tr.Len())
			}
			last := binaryAt(t, tr, tr.Len()-1)
			if last.Found || last.Mid != -1 {
				t.Errorf("expected terminal not-found step, got %+v", last)
			}
			if last.Left != tt.crossing || last.Right != tt.crossing {
				t.Errorf("expected left=right=%d, got left=%d right=%d", tt.crossing, last.Left, last.Right)
			}
			if !last.IsTerminal() {
				t.Error("terminal step does not report IsTerminal")
			}
			if tr.Found() {
				t.Error("trace reports found")
			}
		})
	}
}

func TestBinarySearchComparisons(t *testing.T) {
	tr := BinarySearch(classicSorted, 14)
	want := []string{
		"13 < 14, search right half",
		"19 > 14, search left half",
		"15 > 14, search left half",
		"14 not found in array",
	}
	for i, w := range want {
		if got := tr.At(i).Describe(); got != w {
			t.Errorf("step %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestBinarySearchWindowInvariant(t *testing.T) {
	tr := BinarySearch(classicSorted, 22)
	for i := 0; i < tr.Len()-1; i++ {
		s := binaryAt(t, tr, i)
		if s.Left < 0 || s.Right >= len(classicSorted) || s.Left > s.Right {
			t.Errorf("step %d: bad window %+v", i, s)
		}
		if s.Mid != (s.Left+s.Right)/2 {
			t.Errorf("step %d: mid %d is not floor((%d+%d)/2)", i, s.Mid, s.Left, s.Right)
		}
	}
}

func TestBinarySearchLengthBound(t *testing.T) {
	for n := 0; n <= 64; n++ {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i * 2
		}
		for target := -1; target <= 2*n; target++ {
			tr := BinarySearch(seq, target)
			if tr.Len() < 1 || tr.Len() > bisectBound(n) {
				t.Fatalf("n=%d target=%d: %d steps outside [1, %d]", n, target, tr.Len(), bisectBound(n))
			}
		}
	}
}

func TestBinarySearchDeterministic(t *testing.T) {
	a := BinarySearch(classicSorted, 21)
	b := BinarySearch(classicSorted, 21)
	if !reflect.DeepEqual(a.Steps(), b.Steps()) {
		t.Error("identical inputs produced different traces")
	}
}

func TestBinarySearchCopiesInput(t *testing.T) {
	seq := []int{1, 2, 3}
	tr := BinarySearch(seq, 2)
	seq[0] = 99

	if got := tr.Sequence(); got[0] != 1 {
		t.Errorf("trace retained caller slice: %v", got)
	}
}
