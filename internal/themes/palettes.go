// SPDX-License-Identifier: MIT
package themes

import (
	"sort"

	"github.com/dbbuilder/ui-customizer/internal/tokens"
)

// Preset is a named seed color. Style is a suggestion used when the caller
// names a preset but no style.
type Preset struct {
	Name  string       `json:"name"`
	Seed  string       `json:"seed"` // hex color #RRGGBB
	Style tokens.Style `json:"style"`
}

var presets = map[string]Preset{
	"slate":      {Name: "slate", Seed: "#64748b", Style: tokens.StyleMinimalist},
	"indigo":     {Name: "indigo", Seed: "#4f46e5", Style: tokens.StyleModern},
	"rose":       {Name: "rose", Seed: "#e11d48", Style: tokens.StyleRetro},
	"emerald":    {Name: "emerald", Seed: "#059669", Style: tokens.StyleOrganic},
	"navy":       {Name: "navy", Seed: "#000080", Style: tokens.StyleGeometric},
	"purple":     {Name: "purple", Seed: "#a855f7", Style: tokens.StyleGlassmorphism},
	"teal":       {Name: "teal", Seed: "#14b8a6", Style: tokens.StyleNeumorphism},
	"amber":      {Name: "amber", Seed: "#f59e0b", Style: tokens.StyleBrutalist},
	"rose-mono":  {Name: "rose-mono", Seed: "#e11d48", Style: tokens.StyleMinimalist},
	"green-mono": {Name: "green-mono", Seed: "#22c55e", Style: tokens.StyleMinimalist},
	"blue-mono":  {Name: "blue-mono", Seed: "#3b82f6", Style: tokens.StyleMinimalist},
	"neutral":    {Name: "neutral", Seed: "#6b7280", Style: tokens.StyleModern},
}

// GetPreset returns a preset by name
func GetPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns all presets sorted by name
func ListPresets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetNames returns the sorted preset names.
func PresetNames() []string {
	list := ListPresets()
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names
}
