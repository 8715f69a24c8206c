// SPDX-License-Identifier: MIT
package tokens

import (
	"fmt"
	"maps"
	"math"
)

// Borders holds radius and width tokens.
type Borders struct {
	RadiusXS    string `json:"radius_xs" yaml:"radius_xs" toml:"radius_xs"`
	RadiusSM    string `json:"radius_sm" yaml:"radius_sm" toml:"radius_sm"`
	RadiusMD    string `json:"radius_md" yaml:"radius_md" toml:"radius_md"`
	RadiusLG    string `json:"radius_lg" yaml:"radius_lg" toml:"radius_lg"`
	RadiusXL    string `json:"radius_xl" yaml:"radius_xl" toml:"radius_xl"`
	RadiusFull  string `json:"radius_full" yaml:"radius_full" toml:"radius_full"`
	WidthThin   string `json:"width_thin" yaml:"width_thin" toml:"width_thin"`
	WidthNormal string `json:"width_normal" yaml:"width_normal" toml:"width_normal"`
	WidthThick  string `json:"width_thick" yaml:"width_thick" toml:"width_thick"`
}

// Animations holds duration and easing tokens.
type Animations struct {
	DurationFast    string `json:"duration_fast" yaml:"duration_fast" toml:"duration_fast"`
	DurationNormal  string `json:"duration_normal" yaml:"duration_normal" toml:"duration_normal"`
	DurationSlow    string `json:"duration_slow" yaml:"duration_slow" toml:"duration_slow"`
	EasingEase      string `json:"easing_ease" yaml:"easing_ease" toml:"easing_ease"`
	EasingEaseIn    string `json:"easing_ease_in" yaml:"easing_ease_in" toml:"easing_ease_in"`
	EasingEaseOut   string `json:"easing_ease_out" yaml:"easing_ease_out" toml:"easing_ease_out"`
	EasingEaseInOut string `json:"easing_ease_in_out" yaml:"easing_ease_in_out" toml:"easing_ease_in_out"`
	EasingBounce    string `json:"easing_bounce" yaml:"easing_bounce" toml:"easing_bounce"`
}

// RadiusFull is large enough to make any component pill shaped.
const RadiusFull = "9999px"

var baseRadii = [5]float64{2, 4, 8, 12, 16}

// BuildBorders scales the base radii by the style's multiplier.
func BuildBorders(params StyleParameters) Borders {
	m := math.Max(params.RadiusMultiplier, 0)
	r := func(i int) string {
		return pxString(math.Round(baseRadii[i] * m))
	}
	return Borders{
		RadiusXS:    r(0),
		RadiusSM:    r(1),
		RadiusMD:    r(2),
		RadiusLG:    r(3),
		RadiusXL:    r(4),
		RadiusFull:  RadiusFull,
		WidthThin:   "1px",
		WidthNormal: "2px",
		WidthThick:  "4px",
	}
}

// CubicBezier is a CSS timing function.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		formatFloat(c.X1), formatFloat(c.Y1), formatFloat(c.X2), formatFloat(c.Y2))
}

// Overshoots reports whether the curve leaves the [0,1] progress range.
func (c CubicBezier) Overshoots() bool {
	return c.Y1 < 0 || c.Y1 > 1 || c.Y2 < 0 || c.Y2 > 1
}

// EasingSet is the five named curves of one motion family.
type EasingSet struct {
	Ease      CubicBezier
	EaseIn    CubicBezier
	EaseOut   CubicBezier
	EaseInOut CubicBezier
	Bounce    CubicBezier
}

// easings is keyed by motion character. Only Bounce may overshoot.
var easings = map[Motion]EasingSet{
	MotionSmooth: {
		Ease:      CubicBezier{0.25, 0.1, 0.25, 1},
		EaseIn:    CubicBezier{0.4, 0, 1, 1},
		EaseOut:   CubicBezier{0, 0, 0.2, 1},
		EaseInOut: CubicBezier{0.4, 0, 0.2, 1},
		Bounce:    CubicBezier{0.34, 1.56, 0.64, 1},
	},
	MotionSharp: {
		Ease:      CubicBezier{0.2, 0, 0, 1},
		EaseIn:    CubicBezier{0.5, 0, 1, 1},
		EaseOut:   CubicBezier{0, 0, 0.1, 1},
		EaseInOut: CubicBezier{0.7, 0, 0.3, 1},
		Bounce:    CubicBezier{0.5, 1.25, 0.75, 1.25},
	},
	MotionSoft: {
		Ease:      CubicBezier{0.45, 0.05, 0.55, 0.95},
		EaseIn:    CubicBezier{0.55, 0.085, 0.68, 0.53},
		EaseOut:   CubicBezier{0.25, 0.46, 0.45, 0.94},
		EaseInOut: CubicBezier{0.445, 0.05, 0.55, 0.95},
		Bounce:    CubicBezier{0.175, 0.885, 0.32, 1.275},
	},
	MotionPlayful: {
		Ease:      CubicBezier{0.25, 0.1, 0.25, 1},
		EaseIn:    CubicBezier{0.42, 0, 1, 1},
		EaseOut:   CubicBezier{0, 0, 0.58, 1},
		EaseInOut: CubicBezier{0.42, 0, 0.58, 1},
		Bounce:    CubicBezier{0.68, -0.55, 0.265, 1.55},
	},
}

// Easings returns the easing table keyed by motion character.
func Easings() map[Motion]EasingSet {
	return maps.Clone(easings)
}

var baseDurations = [3]float64{150, 250, 400}

// BuildAnimations scales the base durations by the style's pace and
// picks the easing family for its motion character.
func BuildAnimations(params StyleParameters) Animations {
	pace := params.Pace
	if pace <= 0 {
		pace = 1
	}
	d := func(i int) string {
		return msString(int(math.Round(baseDurations[i] * pace)))
	}

	set, ok := easings[params.Motion]
	if !ok {
		set = easings[MotionSmooth]
	}
	bounce := set.Bounce
	if params.EmphasizeBounce {
		bounce = easings[MotionPlayful].Bounce
	}

	return Animations{
		DurationFast:    d(0),
		DurationNormal:  d(1),
		DurationSlow:    d(2),
		EasingEase:      set.Ease.String(),
		EasingEaseIn:    set.EaseIn.String(),
		EasingEaseOut:   set.EaseOut.String(),
		EasingEaseInOut: set.EaseInOut.String(),
		EasingBounce:    bounce.String(),
	}
}
