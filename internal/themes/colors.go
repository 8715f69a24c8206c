// SPDX-License-Identifier: MIT
package themes

import (
	"strconv"
	"strings"

	"github.com/dbbuilder/ui-customizer/internal/tokens"
)

// Variable is one CSS custom property derived from a bundle.
type Variable struct {
	Name  string
	Value string
}

// Variables flattens a bundle into custom properties in a stable order.
func Variables(b *tokens.Bundle) []Variable {
	var vars []Variable
	add := func(name, value string) {
		vars = append(vars, Variable{Name: "--" + name, Value: value})
	}

	// Colors
	for _, slot := range b.Colors.Slots() {
		add("color-"+kebab(slot.Name), slot.Color.Hex())
	}

	// Typography
	t := b.Typography
	add("font-family-primary", quoteFamily(t.FontFamilyPrimary)+", sans-serif")
	add("font-family-secondary", quoteFamily(t.FontFamilySecondary)+", sans-serif")
	add("font-family-mono", quoteFamily(t.FontFamilyMono)+", monospace")
	// Sizes include the base step, so --font-size-base comes from the scale
	for _, size := range t.Sizes {
		add("font-size-"+size.Name, size.Size)
	}
	add("line-height-base", strconv.FormatFloat(t.LineHeightBase, 'f', -1, 64))
	add("line-height-heading", strconv.FormatFloat(t.LineHeightHeading, 'f', -1, 64))
	add("letter-spacing-normal", t.LetterSpacingNormal)
	add("letter-spacing-wide", t.LetterSpacingWide)

	// Spacing
	for i, v := range b.Spacing.Scale {
		add("space-"+strconv.Itoa(i), strconv.Itoa(v)+"px")
	}
	add("padding-component", b.Spacing.ComponentPadding)
	add("padding-container", b.Spacing.ContainerPadding)
	add("padding-section", b.Spacing.SectionPadding)

	// Borders
	br := b.Borders
	add("radius-xs", br.RadiusXS)
	add("radius-sm", br.RadiusSM)
	add("radius-md", br.RadiusMD)
	add("radius-lg", br.RadiusLG)
	add("radius-xl", br.RadiusXL)
	add("radius-full", br.RadiusFull)
	add("border-thin", br.WidthThin)
	add("border-normal", br.WidthNormal)
	add("border-thick", br.WidthThick)

	// Motion
	a := b.Animations
	add("duration-fast", a.DurationFast)
	add("duration-normal", a.DurationNormal)
	add("duration-slow", a.DurationSlow)
	add("ease", a.EasingEase)
	add("ease-in", a.EasingEaseIn)
	add("ease-out", a.EasingEaseOut)
	add("ease-in-out", a.EasingEaseInOut)
	add("ease-bounce", a.EasingBounce)

	for _, name := range tokens.ShadowNames() {
		if v, ok := b.Shadows[name]; ok {
			add("shadow-"+name, v)
		}
	}
	for _, bp := range tokens.Breakpoints() {
		if v, ok := b.Breakpoints[bp.Name]; ok {
			add("breakpoint-"+bp.Name, v)
		}
	}

	return vars
}

func kebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

func quoteFamily(name string) string {
	if strings.ContainsRune(name, ' ') {
		return `"` + name + `"`
	}
	return name
}
