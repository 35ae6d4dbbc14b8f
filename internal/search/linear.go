package search

import "fmt"

// LinearSearch scans seq from index 0 and stops on the first match.
// A miss over a non-empty seq appends a "not found" step; an empty seq
// yields an empty trace.
func LinearSearch(seq []int, target int) Trace {
	steps := make([]Step, 0, len(seq)+1)

	for i, v := range seq {
		found := v == target
		comparison := fmt.Sprintf("%d ≠ %d, continue searching...", v, target)
		if found {
			comparison = fmt.Sprintf("Found %d at index %d!", target, i)
		}

		steps = append(steps, LinearStep{CurrentIndex: i, Found: found, Comparison: comparison})

		if found {
			break
		}
	}

	if len(steps) > 0 && !steps[len(steps)-1].IsFound() {
		steps = append(steps, LinearStep{
			CurrentIndex: -1,
			Comparison:   fmt.Sprintf("%d not found in array", target),
		})
	}

	return newTrace(Linear, seq, target, steps)
}
