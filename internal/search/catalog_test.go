package search

import "testing"

func TestCategories(t *testing.T) {
	want := []string{"All", "Search", "Sorting", "Graph", "Data Structure"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestFilterCatalog(t *testing.T) {
	tests := []struct {
		term     string
		category string
		count    int
	}{
		{"", "", 7},
		{"", "All", 7},
		{"", "Search", 2},
		{"SEARCH", "", 2},
		{"sorted", "", 1},
		{"structure", "Data Structure", 3},
		{"structure", "Search", 0},
		{"nothing", "", 0},
	}
	for _, tt := range tests {
		if got := FilterCatalog(tt.term, tt.category); len(got) != tt.count {
			t.Errorf("FilterCatalog(%q, %q): expected %d, got %d", tt.term, tt.category, tt.count, len(got))
		}
	}
}

func TestAlgorithmKind(t *testing.T) {
	for _, a := range Catalog() {
		k, ok := a.Kind()
		if ok != a.Implemented {
			t.Errorf("%s: Kind ok=%v, implemented=%v", a.ID, ok, a.Implemented)
		}
		if ok && Lookup(k).ID != a.ID {
			t.Errorf("%s: Lookup round trip gave %s", a.ID, Lookup(k).ID)
		}
	}
}
