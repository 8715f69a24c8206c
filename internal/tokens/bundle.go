// SPDX-License-Identifier: MIT
package tokens

import "slices"

// Bundle is a complete design token set. It is built fresh by Synthesize
// and never modified afterwards.
type Bundle struct {
	Style       Style             `json:"style" yaml:"style" toml:"style"`
	Harmony     Harmony           `json:"harmony" yaml:"harmony" toml:"harmony"`
	Seed        Color             `json:"seed" yaml:"seed" toml:"seed"`
	Colors      Palette           `json:"colors" yaml:"colors" toml:"colors"`
	Typography  Typography        `json:"typography" yaml:"typography" toml:"typography"`
	Spacing     Spacing           `json:"spacing" yaml:"spacing" toml:"spacing"`
	Borders     Borders           `json:"borders" yaml:"borders" toml:"borders"`
	Animations  Animations        `json:"animations" yaml:"animations" toml:"animations"`
	Shadows     map[string]string `json:"shadows" yaml:"shadows" toml:"shadows"`
	Breakpoints map[string]string `json:"breakpoints" yaml:"breakpoints" toml:"breakpoints"`
}

// Breakpoint is a named viewport width.
type Breakpoint struct {
	Name  string
	Value string
}

// breakpoints is the fixed responsive table, narrowest first.
var breakpoints = []Breakpoint{
	{"sm", "640px"},
	{"md", "768px"},
	{"lg", "1024px"},
	{"xl", "1280px"},
	{"2xl", "1536px"},
}

// Breakpoints returns the responsive breakpoints, narrowest first.
func Breakpoints() []Breakpoint {
	return slices.Clone(breakpoints)
}

func buildBreakpoints() map[string]string {
	m := make(map[string]string, len(breakpoints))
	for _, bp := range breakpoints {
		m[bp.Name] = bp.Value
	}
	return m
}

// Options are the inputs to Synthesize. Empty Style and SeedColor are
// chosen with Random; a nil Random uses a fixed default seed.
type Options struct {
	Style     string
	SeedColor string
	Random    RandomSource
}

// Synthesize builds a token bundle. It fails with *InvalidStyleError or
// *InvalidColorError and never returns a partial bundle.
func Synthesize(opts Options) (*Bundle, error) {
	rnd := opts.Random
	if rnd == nil {
		rnd = NewRandomSource(DefaultRandomSeed)
	}

	var style Style
	if opts.Style == "" {
		style = styleOrder[rnd.Intn(len(styleOrder))]
	} else {
		s, err := ParseStyle(opts.Style)
		if err != nil {
			return nil, err
		}
		style = s
	}
	params, err := ParametersFor(style)
	if err != nil {
		return nil, err
	}

	var seed *Color
	if opts.SeedColor != "" {
		c, err := ParseColor(opts.SeedColor)
		if err != nil {
			return nil, err
		}
		seed = &c
	}

	palette, harmony, err := ResolvePalette(seed, style, rnd)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Style:       style,
		Harmony:     harmony,
		Seed:        palette.Primary,
		Colors:      palette,
		Typography:  BuildTypography(params),
		Spacing:     BuildSpacing(params),
		Borders:     BuildBorders(params),
		Animations:  BuildAnimations(params),
		Shadows:     BuildShadows(params, palette),
		Breakpoints: buildBreakpoints(),
	}, nil
}
