package config

import "sort"

// Presets maps a name to an output width.
var Presets = map[string]int{
	"thumb":  MinWidth,
	"small":  40,
	"medium": DefaultWidth,
	"large":  200,
	"max":    MaxWidth,
}

// GetPreset returns the width of a preset and whether it exists.
func GetPreset(name string) (int, bool) {
	w, ok := Presets[name]
	return w, ok
}

// ListPresets returns preset names ordered by width.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]] < Presets[names[j]]
	})
	return names
}
