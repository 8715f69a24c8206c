// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"

	"github.com/dbbuilder/ui-customizer/internal/tokens"
)

func mustBundle(t *testing.T, style, color string) *tokens.Bundle {
	t.Helper()
	b, err := tokens.Synthesize(tokens.Options{Style: style, SeedColor: color})
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	return b
}

func TestGenerateCSS(t *testing.T) {
	b := mustBundle(t, "minimalist", "#2563EB")
	css := GenerateCSS(b)

	if !strings.Contains(css, ":root {") {
		t.Error("CSS missing :root selector")
	}
	if !strings.Contains(css, "--color-primary: #2563EB;") {
		t.Error("CSS missing primary color variable")
	}
	if !strings.Contains(css, "--radius-lg: 6px;") {
		t.Error("CSS missing scaled radius")
	}
	if !strings.Contains(css, "--duration-normal: 200ms;") {
		t.Error("CSS missing paced duration")
	}
	if !strings.Contains(css, "minimalist design tokens, monochromatic harmony") {
		t.Error("CSS missing header comment")
	}
}

func TestGenerateCSSUsesDefinedVariables(t *testing.T) {
	b := mustBundle(t, "retro", "#F97316")
	css := GenerateCSS(b)

	root, rules, ok := strings.Cut(css, "}\n")
	if !ok {
		t.Fatal("could not split :root block")
	}

	// Every var() reference in the base styles must be declared in :root
	for _, part := range strings.Split(rules, "var(")[1:] {
		name, _, _ := strings.Cut(part, ")")
		if !strings.Contains(root, "  "+name+":") {
			t.Errorf("base styles reference undefined variable %s", name)
		}
	}
}

func TestGenerateCSSDarkStyle(t *testing.T) {
	b := mustBundle(t, "glassmorphism", "#a855f7")
	css := GenerateCSS(b)

	if !strings.Contains(css, "--color-background: "+b.Colors.Background.Hex()+";") {
		t.Error("CSS missing dark background")
	}
}
