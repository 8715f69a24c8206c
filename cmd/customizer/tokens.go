// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	tokensStyle   string
	tokensColor   string
	tokensPalette string
	tokensSeed    int64
	tokensFormat  string
	tokensOutput  string
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Generate and inspect design tokens",
}

var tokensGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a design token bundle",
	Example: `  customizer tokens generate --style minimalist --color "#2563EB"
  customizer tokens generate --palette emerald --format css -o tokens.css`,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := themes.ParseFormat(tokensFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		res, err := generateFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		body, err := themes.Encode(res.Bundle, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := writeOutput(tokensOutput, body); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if tokensOutput != "" {
			fmt.Printf("Wrote %s tokens to %s (seed %d)\n", res.Bundle.Style, tokensOutput, res.Seed)
		}
	},
}

var tokensPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a design token bundle in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := generateFromFlags(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(themes.RenderPreview(res.Bundle))
		fmt.Printf("seed %d\n", res.Seed)
	},
}

var tokensStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List supported styles",
	Run: func(cmd *cobra.Command, args []string) {
		printStyles(os.Stdout)
	},
}

var tokensPalettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List named seed color presets",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSEED\tSTYLE")
		for _, p := range themes.ListPresets() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Seed, p.Style)
		}
		w.Flush()
	},
}

// generateFromFlags runs one generation from the shared tokens flags.
// The CLI never uses the bundle cache.
func generateFromFlags(cmd *cobra.Command) (*themes.Result, error) {
	req := themes.Request{
		Style:   tokensStyle,
		Color:   tokensColor,
		Palette: tokensPalette,
	}
	if cmd.Flags().Changed("seed") {
		seed := tokensSeed
		req.Seed = &seed
	}
	return themes.NewService(zerolog.Nop()).Generate(context.Background(), req)
}

func writeOutput(path string, body []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(body)
		return err
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func printStyles(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STYLE\tHARMONY\tRATIO\tUNIT\tMOTION\tMODE")
	for _, s := range tokens.Styles() {
		p, err := tokens.ParametersFor(s)
		if err != nil {
			continue
		}
		mode := "light"
		if p.Dark {
			mode = "dark"
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%dpx\t%s\t%s\n", s, p.EffectiveHarmony(), p.ScaleRatio, p.SpacingUnit, p.Motion, mode)
	}
	w.Flush()
}

func init() {
	for _, c := range []*cobra.Command{tokensGenerateCmd, tokensPreviewCmd} {
		c.Flags().StringVar(&tokensStyle, "style", "", "design style (random when omitted)")
		c.Flags().StringVar(&tokensColor, "color", "", "seed color as hex, e.g. #2563EB (random when omitted)")
		c.Flags().StringVar(&tokensPalette, "palette", "", "named seed color preset")
		c.Flags().Int64Var(&tokensSeed, "seed", 0, "random seed for omitted inputs")
	}
	tokensGenerateCmd.Flags().StringVarP(&tokensFormat, "format", "f", "json", "output format: json, yaml, toml or css")
	tokensGenerateCmd.Flags().StringVarP(&tokensOutput, "output", "o", "", "write to file instead of stdout")

	tokensCmd.AddCommand(tokensGenerateCmd)
	tokensCmd.AddCommand(tokensPreviewCmd)
	tokensCmd.AddCommand(tokensStylesCmd)
	tokensCmd.AddCommand(tokensPalettesCmd)
	rootCmd.AddCommand(tokensCmd)
}
