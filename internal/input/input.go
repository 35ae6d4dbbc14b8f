// Package input turns raw form text into generator arguments.
package input

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/CompProgTools/Algoview/internal/search"
)

var (
	ErrEmptyTarget   = errors.New("input: target is empty")
	ErrInvalidTarget = errors.New("input: target is not an integer")
)

// ParseSequence splits text on commas and keeps every token that starts
// with an integer, in order. Trailing garbage after the digits is ignored,
// so "3.5" reads as 3 and "12abc" as 12.
func ParseSequence(text string) []int {
	fields := strings.Split(text, ",")
	seq := make([]int, 0, len(fields))
	for _, f := range fields {
		n, ok := leadingInt(strings.TrimSpace(f))
		if !ok {
			continue
		}
		seq = append(seq, n)
	}
	return seq
}

// leadingInt parses an optional sign followed by the longest run of
// decimal digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func ParseTarget(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyTarget
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, text)
	}
	return n, nil
}

// Prepare returns a copy of seq ready for kind, sorted ascending when the
// algorithm needs it.
func Prepare(kind search.Kind, seq []int) []int {
	c := slices.Clone(seq)
	if c == nil {
		c = []int{}
	}
	if kind.RequiresSorted() {
		slices.Sort(c)
	}
	return c
}

func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
