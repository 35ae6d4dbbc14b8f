package search

import "fmt"

// BinarySearch bisects seq, which must already be sorted ascending, for
// target. The trace always ends on a conclusive step and is never empty,
// an empty seq yields the single "not found" step.
func BinarySearch(seq []int, target int) Trace {
	steps := make([]Step, 0, bisectBound(len(seq)))
	left, right := 0, len(seq)-1

	for left <= right {
		mid := (left + right) / 2
		v := seq[mid]
		found := v == target

		var comparison string
		switch {
		case found:
			comparison = fmt.Sprintf("Found %d at index %d!", target, mid)
		case v < target:
			comparison = fmt.Sprintf("%d < %d, search right half", v, target)
		default:
			comparison = fmt.Sprintf("%d > %d, search left half", v, target)
		}

		steps = append(steps, BinaryStep{Left: left, Right: right, Mid: mid, Found: found, Comparison: comparison})

		if found {
			break
		}
		if v < target {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	if len(steps) == 0 || !steps[len(steps)-1].IsFound() {
		crossing := right
		if left > right {
			crossing = left
		}
		steps = append(steps, BinaryStep{
			Left:       crossing,
			Right:      crossing,
			Mid:        -1,
			Comparison: fmt.Sprintf("%d not found in array", target),
		})
	}

	return newTrace(Binary, seq, target, steps)
}

// bisectBound is floor(log2(n))+2: the most probes plus the terminal step.
func bisectBound(n int) int {
	b := 2
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}
