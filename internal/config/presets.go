package config

import "sort"

// Presets are named sample inputs.
var Presets = map[string]string{
	"example":    "5, 2, 8, 1, 9",
	"reversed":   "9, 8, 7, 6, 5, 4, 3, 2, 1",
	"sorted":     "1, 2, 3, 4, 5, 6",
	"duplicates": "4, 1, 3, 1, 4, 2, 3",
	"equal":      "5, 5, 5, 5",
	"single":     "1",
	"negatives":  "0, -7, 12, -3, 5, -7",
	"max": "50, 49, 48, 47, 46, 45, 44, 43, 42, 41, 40, 39, 38, 37, 36, 35, 34, " +
		"33, 32, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16, " +
		"15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1",
}

// DefaultPreset is used when no input is given.
const DefaultPreset = "example"

// GetPreset returns the raw input for name.
func GetPreset(name string) (string, bool) {
	raw, ok := Presets[name]
	return raw, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
