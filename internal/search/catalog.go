package search

import "strings"

// Algorithm is one card of the landing catalog.
type Algorithm struct {
	ID           string
	Name         string
	Category     string
	Description  string
	Implemented  bool
	Time         string
	Space        string
	Requirements string
	HowItWorks   []string
}

// Kind maps an implemented catalog entry to its generator.
func (a Algorithm) Kind() (Kind, bool) {
	if !a.Implemented {
		return 0, false
	}
	k, err := ParseKind(a.ID)
	if err != nil {
		return 0, false
	}
	return k, true
}

var catalog = []Algorithm{
	{
		ID:           "binary-search",
		Name:         "Binary Search",
		Category:     "Search",
		Description:  "Efficiently find elements in sorted arrays",
		Implemented:  true,
		Time:         "O(log n)",
		Space:        "O(1)",
		Requirements: "Array must be sorted",
		HowItWorks: []string{
			"Compare target with middle element",
			"If equal, we found it!",
			"If target is smaller, search left half",
			"If target is larger, search right half",
			"Repeat until found or no elements left",
		},
	},
	{
		ID:           "linear-search",
		Name:         "Linear Search",
		Category:     "Search",
		Description:  "Sequential search through array elements",
		Implemented:  true,
		Time:         "O(n)",
		Space:        "O(1)",
		Requirements: "None (works on unsorted arrays)",
		HowItWorks: []string{
			"It starts from the first element (index 0)",
			"Compares each element with the target",
			"If it's equal, it means you found it",
			"If not, move to next element",
			"Repeat until found or end of array",
		},
	},
	{ID: "merge-sort", Name: "Merge Sort", Category: "Sorting", Description: "Divide and conquer sorting algorithm"},
	{ID: "dijkstra", Name: "Dijkstra's Algorithm", Category: "Graph", Description: "Find shortest paths in weighted graphs"},
	{ID: "linked-list", Name: "Linked List", Category: "Data Structure", Description: "Dynamic linear data structure"},
	{ID: "stack", Name: "Stack", Category: "Data Structure", Description: "Last In First Out (LIFO) structure"},
	{ID: "queue", Name: "Queue", Category: "Data Structure", Description: "First In First Out (FIFO) structure"},
}

func Catalog() []Algorithm {
	c := make([]Algorithm, len(catalog))
	copy(c, catalog)
	return c
}

// Categories returns "All" followed by each distinct category in catalog order.
func Categories() []string {
	seen := make(map[string]bool)
	cats := []string{"All"}
	for _, a := range catalog {
		if !seen[a.Category] {
			seen[a.Category] = true
			cats = append(cats, a.Category)
		}
	}
	return cats
}

func FilterCatalog(term, category string) []Algorithm {
	term = strings.ToLower(term)
	out := make([]Algorithm, 0, len(catalog))
	for _, a := range catalog {
		if category != "" && category != "All" && a.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Name), term) &&
			!strings.Contains(strings.ToLower(a.Description), term) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func Lookup(kind Kind) Algorithm {
	for _, a := range catalog {
		if k, ok := a.Kind(); ok && k == kind {
			return a
		}
	}
	return Algorithm{ID: kind.String(), Name: kind.String()}
}
