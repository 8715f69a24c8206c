// SPDX-License-Identifier: MIT
package tokens

import (
	"fmt"
	"math"
)

type elevation struct {
	name   string
	y      float64
	blur   float64
	spread float64
	alpha  float64
}

var elevations = []elevation{
	{"sm", 1, 2, 0, 0.06},
	{"md", 4, 6, -1, 0.1},
	{"lg", 10, 15, -3, 0.12},
	{"xl", 20, 25, -5, 0.16},
}

// ShadowNames lists the elevation levels from lowest to highest.
func ShadowNames() []string {
	names := make([]string, len(elevations))
	for i, e := range elevations {
		names[i] = e.name
	}
	return names
}

// BuildShadows derives elevation shadows from the palette's shadow color.
// Zero softness yields hard offset shadows.
func BuildShadows(params StyleParameters, palette Palette) map[string]string {
	shadows := make(map[string]string, len(elevations))
	for _, e := range elevations {
		alpha := round(math.Min(e.alpha*params.ShadowStrength, 1), 3)
		blur := math.Round(e.blur * params.ShadowSoftness)
		x := 0.0
		spread := e.spread
		if params.ShadowSoftness == 0 {
			x = e.y
			spread = 0
		}
		shadows[e.name] = fmt.Sprintf("%s %s %s %s %s",
			pxValue(x), pxValue(e.y), pxValue(blur), pxValue(spread), palette.Shadow.RGBA(alpha))
	}
	return shadows
}

// pxValue renders zero without a unit, as CSS convention has it.
func pxValue(v float64) string {
	if v == 0 {
		return "0"
	}
	return pxString(v)
}
