package export

import (
	"strings"
	"testing"

	"github.com/CompProgTools/Algoview/internal/search"
	"github.com/CompProgTools/Algoview/internal/viz"
)

func TestTraceSVG(t *testing.T) {
	tr := search.LinearSearch([]int{4, 8, 15}, 8)
	svg := TraceSVG(tr, viz.ThemeDefault)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if got := strings.Count(svg, "<rect "); got != 1+3*tr.Len() {
		t.Errorf("expected background plus %d cells, got %d rects", 3*tr.Len(), got)
	}
	if !strings.Contains(svg, "Found 8 at index 1!") {
		t.Error("missing comparison text")
	}
	if !strings.Contains(svg, string(viz.ThemeDefault.Success)) {
		t.Error("found cell not colored with success")
	}
}

func TestTraceSVGEscapesText(t *testing.T) {
	tr := search.BinarySearch([]int{1, 3, 5}, 4)
	svg := TraceSVG(tr, viz.ThemeMono)
	if strings.Contains(svg, "5 > 4") {
		t.Error("comparison text not escaped")
	}
	if !strings.Contains(svg, "5 &gt; 4, search left half") {
		t.Errorf("expected escaped comparison in %s", svg)
	}
}

func TestTraceSVGEmpty(t *testing.T) {
	svg := TraceSVG(search.BinarySearch(nil, 1), viz.ThemeDefault)
	if !strings.Contains(svg, "no steps") {
		t.Error("expected placeholder for empty trace")
	}
}

func TestWindowSVG(t *testing.T) {
	tr := search.BinarySearch([]int{1, 3, 5, 7, 9, 11, 13, 15}, 2)
	svg := WindowSVG(tr, 200, 100, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if got := strings.Count(svg, " L"); got != tr.Len()-1 {
		t.Errorf("expected %d segments, got %d", tr.Len()-1, got)
	}

	if WindowSVG(search.LinearSearch([]int{1}, 1), 200, 100, "#fff") != "" {
		t.Error("single step trace should produce no plot")
	}
}
