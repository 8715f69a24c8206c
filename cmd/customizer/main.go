// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "customizer",
	Short: "UI Customizer - design token synthesis",
	Long: `UI Customizer generates complete design token bundles (colors,
typography, spacing, borders, motion, shadows and breakpoints) from a
style name and an optional seed color.

Run it as an HTTP API with "server start", or generate bundles directly
with "tokens generate".`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
