// SPDX-License-Identifier: MIT
package tokens

import (
	"slices"
	"strings"
)

// Style identifies a design aesthetic.
type Style string

const (
	StyleModern        Style = "modern"
	StyleMinimalist    Style = "minimalist"
	StyleBrutalist     Style = "brutalist"
	StyleGlassmorphism Style = "glassmorphism"
	StyleNeumorphism   Style = "neumorphism"
	StyleRetro         Style = "retro"
	StyleOrganic       Style = "organic"
	StyleGeometric     Style = "geometric"
)

// styleOrder lists every supported style in a fixed order.
var styleOrder = []Style{
	StyleModern,
	StyleMinimalist,
	StyleBrutalist,
	StyleGlassmorphism,
	StyleNeumorphism,
	StyleRetro,
	StyleOrganic,
	StyleGeometric,
}

// Styles returns every supported style in a fixed order.
func Styles() []Style {
	return slices.Clone(styleOrder)
}

// Harmony is a rule for picking related hues on the color wheel.
type Harmony string

const (
	HarmonyNone               Harmony = ""
	HarmonyMonochromatic      Harmony = "monochromatic"
	HarmonyAnalogous          Harmony = "analogous"
	HarmonyComplementary      Harmony = "complementary"
	HarmonyTriadic            Harmony = "triadic"
	HarmonySplitComplementary Harmony = "split_complementary"
	HarmonyTetradic           Harmony = "tetradic"
	HarmonyCompound           Harmony = "compound"
)

// Motion names an easing family.
type Motion string

const (
	MotionSmooth  Motion = "smooth"
	MotionSharp   Motion = "sharp"
	MotionSoft    Motion = "soft"
	MotionPlayful Motion = "playful"
)

// StyleParameters are the per-style knobs every builder reads.
type StyleParameters struct {
	// Harmony is the preferred color harmony; HarmonyNone means no
	// preference and resolves to analogous.
	Harmony Harmony `json:"harmony"`
	// Dark selects near-black backgrounds instead of near-white.
	Dark bool `json:"dark"`

	ScaleRatio  float64 `json:"scale_ratio"`
	FontPairing int     `json:"font_pairing"`

	// SpacingUnit is the base spacing in px, never below 4.
	SpacingUnit      int     `json:"spacing_unit"`
	RadiusMultiplier float64 `json:"radius_multiplier"`

	// Pace scales every animation duration.
	Pace            float64 `json:"pace"`
	Motion          Motion  `json:"motion"`
	EmphasizeBounce bool    `json:"emphasize_bounce"`

	// ShadowStrength scales shadow opacity, ShadowSoftness scales blur.
	ShadowStrength float64 `json:"shadow_strength"`
	ShadowSoftness float64 `json:"shadow_softness"`
}

var registry = map[Style]StyleParameters{
	StyleModern: {
		Harmony:          HarmonyNone,
		ScaleRatio:       1.25,
		FontPairing:      0,
		SpacingUnit:      8,
		RadiusMultiplier: 1.0,
		Pace:             1.0,
		Motion:           MotionSmooth,
		ShadowStrength:   1.0,
		ShadowSoftness:   1.0,
	},
	StyleMinimalist: {
		Harmony:          HarmonyMonochromatic,
		ScaleRatio:       1.2,
		FontPairing:      7,
		SpacingUnit:      4,
		RadiusMultiplier: 0.5,
		Pace:             0.8,
		Motion:           MotionSmooth,
		ShadowStrength:   0.6,
		ShadowSoftness:   1.2,
	},
	StyleBrutalist: {
		Harmony:          HarmonyComplementary,
		ScaleRatio:       1.5,
		FontPairing:      6,
		SpacingUnit:      12,
		RadiusMultiplier: 0,
		Pace:             0.6,
		Motion:           MotionSharp,
		ShadowStrength:   1.8,
		ShadowSoftness:   0,
	},
	StyleGlassmorphism: {
		Harmony:          HarmonyTriadic,
		Dark:             true,
		ScaleRatio:       1.25,
		FontPairing:      8,
		SpacingUnit:      8,
		RadiusMultiplier: 1.5,
		Pace:             1.2,
		Motion:           MotionSmooth,
		ShadowStrength:   1.2,
		ShadowSoftness:   1.6,
	},
	StyleNeumorphism: {
		Harmony:          HarmonyAnalogous,
		ScaleRatio:       1.2,
		FontPairing:      4,
		SpacingUnit:      8,
		RadiusMultiplier: 1.75,
		Pace:             1.1,
		Motion:           MotionSoft,
		ShadowStrength:   0.8,
		ShadowSoftness:   1.8,
	},
	StyleRetro: {
		Harmony:          HarmonyTetradic,
		ScaleRatio:       1.333,
		FontPairing:      3,
		SpacingUnit:      8,
		RadiusMultiplier: 0.75,
		Pace:             1.0,
		Motion:           MotionPlayful,
		EmphasizeBounce:  true,
		ShadowStrength:   1.4,
		ShadowSoftness:   0.5,
	},
	StyleOrganic: {
		Harmony:          HarmonySplitComplementary,
		ScaleRatio:       1.2,
		FontPairing:      1,
		SpacingUnit:      8,
		RadiusMultiplier: 2.0,
		Pace:             1.3,
		Motion:           MotionSoft,
		EmphasizeBounce:  true,
		ShadowStrength:   0.9,
		ShadowSoftness:   1.4,
	},
	StyleGeometric: {
		Harmony:          HarmonyCompound,
		Dark:             true,
		ScaleRatio:       1.333,
		FontPairing:      2,
		SpacingUnit:      8,
		RadiusMultiplier: 0.25,
		Pace:             0.9,
		Motion:           MotionSharp,
		ShadowStrength:   1.0,
		ShadowSoftness:   0.8,
	},
}

// ParseStyle validates a style name. Names must match exactly.
func ParseStyle(name string) (Style, error) {
	s := Style(name)
	if _, ok := registry[s]; !ok {
		return "", &InvalidStyleError{Style: name}
	}
	return s, nil
}

// ParametersFor returns the parameter table for a style.
func ParametersFor(style Style) (StyleParameters, error) {
	params, ok := registry[style]
	if !ok {
		return StyleParameters{}, &InvalidStyleError{Style: string(style)}
	}
	return params, nil
}

// EffectiveHarmony resolves HarmonyNone to the analogous fallback.
func (p StyleParameters) EffectiveHarmony() Harmony {
	if p.Harmony == HarmonyNone {
		return HarmonyAnalogous
	}
	return p.Harmony
}

func styleList() string {
	names := make([]string, len(styleOrder))
	for i, s := range styleOrder {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
