package config

import "sort"

type Preset struct {
	Sequence []int
	Target   int
}

var classicSorted = []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25}
var classicUnsorted = []int{7, 2, 9, 1, 5, 6, 3, 8, 4}

var Presets = map[string]map[string]Preset{
	"binary": {
		"classic":    {Sequence: classicSorted, Target: 13},
		"missing":    {Sequence: classicSorted, Target: 14},
		"edge-left":  {Sequence: classicSorted, Target: 1},
		"edge-right": {Sequence: classicSorted, Target: 25},
		"empty":      {Sequence: []int{}, Target: 13},
	},
	"linear": {
		"classic": {Sequence: classicUnsorted, Target: 5},
		"missing": {Sequence: classicUnsorted, Target: 42},
		"first":   {Sequence: classicUnsorted, Target: 7},
		"last":    {Sequence: classicUnsorted, Target: 4},
		"empty":   {Sequence: []int{}, Target: 5},
	},
}

func GetPreset(algorithm, name string) *Preset {
	presets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns the preset names for algorithm in sorted order.
func ListPresets(algorithm string) []string {
	presets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
