// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
)

var (
	black = tokens.Color{}
	white = tokens.Color{R: 255, G: 255, B: 255}
)

// RenderPreview draws a bundle for the terminal: color swatches followed
// by the type, spacing, radius and motion scales.
func RenderPreview(b *tokens.Bundle) string {
	accent := lipgloss.Color(b.Colors.Primary.Hex())
	heading := lipgloss.NewStyle().Bold(true).Foreground(accent)
	section := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.Colors.Border.Hex())).
		Padding(0, 1)

	title := heading.Render(fmt.Sprintf("%s · %s harmony · seed %s", b.Style, b.Harmony, b.Seed.Hex()))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		section.Render(renderSwatches(b.Colors)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			section.Render(renderTypography(b.Typography)),
			section.Render(renderScales(b)),
		),
	)
}

func renderSwatches(p tokens.Palette) string {
	var rows []string
	var row []string
	for i, slot := range p.Slots() {
		fg := black
		if tokens.Contrast(white, slot.Color) > tokens.Contrast(black, slot.Color) {
			fg = white
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(slot.Color.Hex())).
			Foreground(lipgloss.Color(fg.Hex())).
			Width(18).
			Padding(0, 1).
			Render(slot.Name + "\n" + slot.Color.Hex())
		row = append(row, swatch)
		if (i+1)%4 == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTypography(t tokens.Typography) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s / %s\n", t.FontFamilyPrimary, t.FontFamilySecondary)
	fmt.Fprintf(&sb, "ratio %s  line-height %s/%s\n",
		strconv.FormatFloat(t.ScaleRatio, 'f', -1, 64),
		strconv.FormatFloat(t.LineHeightBase, 'f', -1, 64),
		strconv.FormatFloat(t.LineHeightHeading, 'f', -1, 64))
	for _, size := range t.Sizes {
		fmt.Fprintf(&sb, "%-5s %s\n", size.Name, size.Size)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderScales(b *tokens.Bundle) string {
	var sb strings.Builder
	sb.WriteString("spacing\n")
	for _, v := range b.Spacing.Scale {
		bar := v / 4
		if bar < 1 {
			bar = 1
		}
		fmt.Fprintf(&sb, "%4dpx %s\n", v, strings.Repeat("▇", bar))
	}
	fmt.Fprintf(&sb, "radius %s %s %s %s %s\n",
		b.Borders.RadiusXS, b.Borders.RadiusSM, b.Borders.RadiusMD, b.Borders.RadiusLG, b.Borders.RadiusXL)
	fmt.Fprintf(&sb, "motion %s / %s / %s", b.Animations.DurationFast, b.Animations.DurationNormal, b.Animations.DurationSlow)
	return sb.String()
}
