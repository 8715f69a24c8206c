// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/dbbuilder/ui-customizer/internal/tokens"
)

// baseStyles applies the custom properties to common elements.
const baseStyles = `
/* Base element styles */
body {
  background-color: var(--color-background);
  color: var(--color-text-primary);
  font-family: var(--font-family-secondary);
  font-size: var(--font-size-base);
  line-height: var(--line-height-base);
  transition: background-color var(--duration-normal) var(--ease),
    color var(--duration-normal) var(--ease);
}

h1, h2, h3, h4, h5, h6 {
  font-family: var(--font-family-primary);
  line-height: var(--line-height-heading);
}

a {
  color: var(--color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: var(--color-primary);
  color: var(--color-background);
  border: none;
  padding: var(--space-2) var(--space-3);
  border-radius: var(--radius-md);
  cursor: pointer;
  transition: opacity var(--duration-fast) var(--ease-out);
}

button:hover, .btn:hover {
  opacity: 0.9;
}

/* Card/surface styles */
.card, .surface {
  background-color: var(--color-surface);
  border: var(--border-thin) solid var(--color-border);
  border-radius: var(--radius-lg);
  padding: var(--padding-component);
  box-shadow: var(--shadow-md);
}

/* Input styles */
input, textarea, select {
  border: var(--border-thin) solid var(--color-border);
  background-color: var(--color-surface);
  color: var(--color-text-primary);
  padding: var(--space-2);
  border-radius: var(--radius-sm);
}

input:focus, textarea:focus, select:focus {
  outline: none;
  border-color: var(--color-accent);
}

/* Muted text */
.text-muted, .muted {
  color: var(--color-text-secondary);
}

/* Status colors */
.success { color: var(--color-success); }
.error, .danger { color: var(--color-error); }
.warning { color: var(--color-warning); }
.info { color: var(--color-info); }
`

// GenerateCSS renders a bundle as a stylesheet of custom properties
// followed by base element styles that use them.
func GenerateCSS(b *tokens.Bundle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/* %s design tokens, %s harmony */\n", b.Style, b.Harmony)
	sb.WriteString(":root {\n")
	for _, v := range Variables(b) {
		fmt.Fprintf(&sb, "  %s: %s;\n", v.Name, v.Value)
	}
	sb.WriteString("}\n")
	sb.WriteString(baseStyles)
	return sb.String()
}
