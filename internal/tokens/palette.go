// SPDX-License-Identifier: MIT
package tokens

import (
	"fmt"
	"math"
)

// Palette is the full semantic color set of a bundle.
type Palette struct {
	Primary       Color `json:"primary" yaml:"primary" toml:"primary"`
	Secondary     Color `json:"secondary" yaml:"secondary" toml:"secondary"`
	Accent        Color `json:"accent" yaml:"accent" toml:"accent"`
	Neutral       Color `json:"neutral" yaml:"neutral" toml:"neutral"`
	Background    Color `json:"background" yaml:"background" toml:"background"`
	Surface       Color `json:"surface" yaml:"surface" toml:"surface"`
	Success       Color `json:"success" yaml:"success" toml:"success"`
	Warning       Color `json:"warning" yaml:"warning" toml:"warning"`
	Error         Color `json:"error" yaml:"error" toml:"error"`
	Info          Color `json:"info" yaml:"info" toml:"info"`
	TextPrimary   Color `json:"text_primary" yaml:"text_primary" toml:"text_primary"`
	TextSecondary Color `json:"text_secondary" yaml:"text_secondary" toml:"text_secondary"`
	Border        Color `json:"border" yaml:"border" toml:"border"`
	Shadow        Color `json:"shadow" yaml:"shadow" toml:"shadow"`
}

// Slot is a named palette entry.
type Slot struct {
	Name  string
	Color Color
}

// Slots returns the palette entries in declaration order.
func (p Palette) Slots() []Slot {
	return []Slot{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"neutral", p.Neutral},
		{"background", p.Background},
		{"surface", p.Surface},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
		{"text_primary", p.TextPrimary},
		{"text_secondary", p.TextSecondary},
		{"border", p.Border},
		{"shadow", p.Shadow},
	}
}

// Contrast thresholds for text against the background.
const (
	MinTextContrast          = 4.5
	MinSecondaryTextContrast = 3.0

	maxContrastAdjustments = 20
	contrastStep           = 0.05
)

// Hue anchors for status colors.
const (
	hueSuccess = 142.0
	hueWarning = 38.0
	hueError   = 0.0
	hueInfo    = 217.0
)

type hueOffsets struct {
	secondary float64
	accent    float64
}

var harmonyOffsets = map[Harmony]hueOffsets{
	HarmonyMonochromatic:      {0, 0},
	HarmonyAnalogous:          {30, -30},
	HarmonyComplementary:      {180, 180},
	HarmonyTriadic:            {120, 240},
	HarmonySplitComplementary: {150, 210},
	HarmonyTetradic:           {90, 180},
	HarmonyCompound:           {30, 165},
}

// ResolvePalette derives the full palette for a style from a seed color.
// A nil seed is drawn from rnd.
func ResolvePalette(seed *Color, style Style, rnd RandomSource) (Palette, Harmony, error) {
	params, err := ParametersFor(style)
	if err != nil {
		return Palette{}, HarmonyNone, err
	}

	var primary Color
	if seed != nil {
		primary = *seed
	} else {
		primary = RandomSeedColor(rnd)
	}

	harmony := params.EffectiveHarmony()
	h, s, l := primary.HSL()
	p := Palette{Primary: primary}

	// Hue relationships
	off := harmonyOffsets[harmony]
	accentS := math.Min(1, s*1.2+0.1)
	switch harmony {
	case HarmonyMonochromatic:
		p.Secondary = HSL(h, s*0.85, shiftLightness(l, 0.15))
		p.Accent = HSL(h, accentS, shiftLightness(l, -0.15))
	case HarmonyComplementary:
		p.Secondary = HSL(h+off.secondary, s*0.85, l)
		p.Accent = HSL(h+off.accent, math.Min(1, s*1.25+0.15), clamp(l+0.1, 0.45, 0.7))
	default:
		p.Secondary = HSL(h+off.secondary, s*0.85, l)
		p.Accent = HSL(h+off.accent, accentS, clamp(l, 0.45, 0.6))
	}

	neutralS := math.Min(s*0.15, 0.12)
	tintS := math.Min(s, 0.4) * 0.25

	// Surfaces
	if params.Dark {
		p.Neutral = HSL(h, neutralS, 0.6)
		p.Background = HSL(h, tintS, 0.08)
		p.Surface = HSL(h, tintS, 0.13)
		p.Border = HSL(h, neutralS, 0.24)
		p.Shadow = HSL(h, neutralS, 0.02)
	} else {
		p.Neutral = HSL(h, neutralS, 0.5)
		p.Background = HSL(h, tintS, 0.98)
		p.Surface = HSL(h, tintS, 0.95)
		p.Border = HSL(h, neutralS, 0.88)
		p.Shadow = HSL(h, neutralS, 0.1)
	}

	// Text
	textS := math.Min(s, 0.3) * 0.3
	darkText := HSL(h, textS, 0.12)
	lightText := HSL(h, textS, 0.96)
	secondaryL := 0.38
	primaryText := darkText
	if Contrast(lightText, p.Background) > Contrast(darkText, p.Background) {
		primaryText = lightText
		secondaryL = 0.72
	}
	if p.TextPrimary, err = ensureContrast(primaryText, p.Background, MinTextContrast); err != nil {
		return Palette{}, HarmonyNone, err
	}
	if p.TextSecondary, err = ensureContrast(HSL(h, textS, secondaryL), p.Background, MinSecondaryTextContrast); err != nil {
		return Palette{}, HarmonyNone, err
	}

	// Status colors follow the seed's saturation level
	statusS := clamp(s, 0.45, 0.85)
	statusL := 0.42
	if params.Dark {
		statusL = 0.6
	}
	p.Success = HSL(hueSuccess, statusS, statusL)
	p.Warning = HSL(hueWarning, statusS, statusL)
	p.Error = HSL(hueError, statusS, statusL)
	p.Info = HSL(hueInfo, statusS, statusL)

	return p, harmony, nil
}

// RandomSeedColor draws a reasonably vivid mid-lightness color.
func RandomSeedColor(rnd RandomSource) Color {
	if rnd == nil {
		rnd = NewRandomSource(DefaultRandomSeed)
	}
	h := rnd.Float64() * 360
	s := 0.55 + rnd.Float64()*0.3
	l := 0.45 + rnd.Float64()*0.1
	return HSL(h, s, l)
}

// ensureContrast moves fg's lightness away from bg until the ratio reaches threshold.
func ensureContrast(fg, bg Color, threshold float64) (Color, error) {
	h, s, l := fg.HSL()
	step := contrastStep
	if fg.Luminance() <= bg.Luminance() {
		step = -contrastStep
	}

	c := fg
	for i := 0; i <= maxContrastAdjustments; i++ {
		if Contrast(c, bg) >= threshold {
			return c, nil
		}
		l = clamp01(l + step)
		c = HSL(h, s, l)
	}
	return Color{}, &InvalidColorError{
		Value:  bg.Hex(),
		Reason: fmt.Sprintf("text contrast %.2f:1 below %.1f:1 after %d adjustments", Contrast(c, bg), threshold, maxContrastAdjustments),
	}
}

// shiftLightness applies delta, or the opposite delta when that would
// leave the usable range.
func shiftLightness(l, delta float64) float64 {
	if next := l + delta; next >= 0.15 && next <= 0.85 {
		return next
	}
	return clamp(l-delta, 0.15, 0.85)
}
