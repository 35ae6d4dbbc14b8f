// Package search generates step traces for simple search algorithms.
//
// A trace is the full, precomputed list of algorithm states for one
// (sequence, target) pair:
//
//   - [BinarySearch]: bisection over a sorted sequence
//   - [LinearSearch]: left-to-right scan over any sequence
//   - [Step]: uniform view over both step shapes for renderers
//   - [Trace]: immutable ordered steps plus the inputs that produced them
//
// # Example
//
//	tr := search.BinarySearch([]int{1, 3, 5, 7, 9}, 7)
//	for i := 0; i < tr.Len(); i++ {
//		fmt.Println(tr.At(i).Describe())
//	}
//
// Generators are pure: they never fail, never retain the caller's slice,
// and return structurally identical traces for identical inputs.
package search
