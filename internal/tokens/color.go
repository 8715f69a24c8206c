// SPDX-License-Identifier: MIT
package tokens

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color quantized to 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#RGB" or "#RRGGBB" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	hex := strings.TrimPrefix(raw, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return Color{}, &InvalidColorError{Value: s, Reason: "expected #RGB or #RRGGBB"}
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return Color{}, &InvalidColorError{Value: s, Reason: fmt.Sprintf("invalid hex digit %q", r)}
		}
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return Color{}, &InvalidColorError{Value: s, Reason: err.Error()}
	}
	return fromColorful(c), nil
}

// MustParseColor is ParseColor for package-level constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSL builds a color from hue in degrees and saturation/lightness in [0,1].
// Out-of-range inputs are normalized.
func HSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(normalizeHue(h), clamp01(s), clamp01(l)))
}

// HSL returns hue in [0,360) and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Hex returns the "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA renders the color as a CSS rgba() value.
func (c Color) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatFloat(clamp01(alpha)))
}

// Luminance is the WCAG relative luminance.
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Contrast returns the WCAG contrast ratio between two colors, in [1,21].
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
