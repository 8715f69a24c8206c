// SPDX-License-Identifier: MIT
package tokens

import (
	"math"
	"slices"
)

// Typography is the type system of a bundle.
type Typography struct {
	FontFamilyPrimary   string     `json:"font_family_primary" yaml:"font_family_primary" toml:"font_family_primary"`
	FontFamilySecondary string     `json:"font_family_secondary" yaml:"font_family_secondary" toml:"font_family_secondary"`
	FontFamilyMono      string     `json:"font_family_mono" yaml:"font_family_mono" toml:"font_family_mono"`
	ScaleRatio          float64    `json:"scale_ratio" yaml:"scale_ratio" toml:"scale_ratio"`
	BaseSize            string     `json:"base_size" yaml:"base_size" toml:"base_size"`
	LineHeightBase      float64    `json:"line_height_base" yaml:"line_height_base" toml:"line_height_base"`
	LineHeightHeading   float64    `json:"line_height_heading" yaml:"line_height_heading" toml:"line_height_heading"`
	LetterSpacingNormal string     `json:"letter_spacing_normal" yaml:"letter_spacing_normal" toml:"letter_spacing_normal"`
	LetterSpacingWide   string     `json:"letter_spacing_wide" yaml:"letter_spacing_wide" toml:"letter_spacing_wide"`
	Sizes               []FontSize `json:"sizes" yaml:"sizes" toml:"sizes"`
}

// FontSize is one step of the modular type scale.
type FontSize struct {
	Name string  `json:"name" yaml:"name" toml:"name"`
	Px   float64 `json:"px" yaml:"px" toml:"px"`
	Size string  `json:"size" yaml:"size" toml:"size"`
}

// FontPairing is a primary/secondary family combination.
type FontPairing struct {
	Primary   string
	Secondary string
}

// fontPairings is indexed by StyleParameters.FontPairing.
var fontPairings = []FontPairing{
	{"Inter", "Inter"},
	{"Poppins", "Inter"},
	{"Roboto", "Open Sans"},
	{"Montserrat", "Source Sans Pro"},
	{"Nunito", "Lato"},
	{"Work Sans", "Merriweather"},
	{"Space Grotesk", "Inter"},
	{"Plus Jakarta Sans", "Inter"},
	{"Outfit", "Inter"},
}

// FontPairings returns the font pairing table.
func FontPairings() []FontPairing {
	return slices.Clone(fontPairings)
}

const (
	baseFontSize   = 16.0
	monoFontFamily = "JetBrains Mono"
)

// Scale steps relative to the base size.
var typeSteps = []struct {
	name string
	exp  int
}{
	{"xs", -2},
	{"sm", -1},
	{"base", 0},
	{"lg", 1},
	{"xl", 2},
	{"2xl", 3},
	{"3xl", 4},
	{"4xl", 5},
}

// BuildTypography derives the type system for a style.
func BuildTypography(params StyleParameters) Typography {
	pairing := fontPairings[params.FontPairing%len(fontPairings)]
	ratio := params.ScaleRatio

	heading := round(1+0.5/ratio, 2)
	sizes := make([]FontSize, 0, len(typeSteps))
	for _, step := range typeSteps {
		px := round(baseFontSize*math.Pow(ratio, float64(step.exp)), 2)
		sizes = append(sizes, FontSize{Name: step.name, Px: px, Size: pxString(px)})
	}

	return Typography{
		FontFamilyPrimary:   pairing.Primary,
		FontFamilySecondary: pairing.Secondary,
		FontFamilyMono:      monoFontFamily,
		ScaleRatio:          ratio,
		BaseSize:            pxString(baseFontSize),
		LineHeightBase:      round(heading+0.3, 2),
		LineHeightHeading:   heading,
		LetterSpacingNormal: "0em",
		LetterSpacingWide:   "0.05em",
		Sizes:               sizes,
	}
}
