// SPDX-License-Identifier: MIT
package tokens

import (
	"math"
	"slices"
)

// Spacing is a geometric spacing scale with named padding presets.
type Spacing struct {
	Unit             int    `json:"unit" yaml:"unit" toml:"unit"`
	Scale            []int  `json:"scale" yaml:"scale" toml:"scale"`
	ContainerPadding string `json:"container_padding" yaml:"container_padding" toml:"container_padding"`
	SectionPadding   string `json:"section_padding" yaml:"section_padding" toml:"section_padding"`
	ComponentPadding string `json:"component_padding" yaml:"component_padding" toml:"component_padding"`
}

// spacingMultipliers is shared by every style; only the unit varies.
var spacingMultipliers = []float64{0.25, 0.5, 1, 2, 3, 4, 6, 8, 12, 16}

// SpacingMultipliers returns the multipliers applied to a style's unit.
func SpacingMultipliers() []float64 {
	return slices.Clone(spacingMultipliers)
}

// Indices into the scale for the padding presets.
const (
	componentPaddingIndex = 3
	containerPaddingIndex = 6
	sectionPaddingIndex   = 8

	minSpacingUnit = 4
)

// BuildSpacing applies the multiplier table to the style's unit. Values
// are rounded half away from zero.
func BuildSpacing(params StyleParameters) Spacing {
	unit := params.SpacingUnit
	if unit < minSpacingUnit {
		unit = minSpacingUnit
	}

	scale := make([]int, len(spacingMultipliers))
	for i, m := range spacingMultipliers {
		scale[i] = int(math.Round(float64(unit) * m))
	}

	return Spacing{
		Unit:             unit,
		Scale:            scale,
		ComponentPadding: pxString(float64(scale[componentPaddingIndex])),
		ContainerPadding: pxString(float64(scale[containerPaddingIndex])),
		SectionPadding:   pxString(float64(scale[sectionPaddingIndex])),
	}
}
