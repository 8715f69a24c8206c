// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format is an export encoding for token bundles.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCSS  Format = "css"
)

// Formats lists the supported export encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatCSS}

// ParseFormat validates a format name. An empty name means JSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatJSON, nil
	case "yml":
		return FormatYAML, nil
	case FormatJSON, FormatYAML, FormatTOML, FormatCSS:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: must be one of json, yaml, toml, css", name)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	case FormatCSS:
		return "text/css; charset=utf-8"
	default:
		return "application/json"
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Encode serializes a bundle in the given format.
func Encode(b *tokens.Bundle, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return out, nil
	case FormatTOML:
		out, err := toml.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
		return out, nil
	case FormatCSS:
		return []byte(GenerateCSS(b)), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}
