// SPDX-License-Identifier: MIT

// Package tokens synthesizes design token bundles (colors, typography,
// spacing, borders, motion, shadows and breakpoints) from a style name and
// an optional seed color.
//
// Synthesis is a pure function of its inputs: the style table is read-only
// and randomness is always supplied by the caller, so Synthesize is safe
// to call from any number of goroutines.
package tokens
