// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     FormatJSON,
		"json": FormatJSON,
		"YAML": FormatYAML,
		"yml":  FormatYAML,
		"toml": FormatTOML,
		"css":  FormatCSS,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncodeJSON(t *testing.T) {
	b := mustBundle(t, "modern", "#2563EB")
	out, err := Encode(b, FormatJSON)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	colors := doc["colors"].(map[string]any)
	assert.Equal(t, "#2563EB", colors["primary"])
	assert.Equal(t, "modern", doc["style"])
	assert.Equal(t, "analogous", doc["harmony"])
}

func TestEncodeYAML(t *testing.T) {
	b := mustBundle(t, "brutalist", "#000000")
	out, err := Encode(b, FormatYAML)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "brutalist", doc["style"])
	borders := doc["borders"].(map[string]any)
	assert.Equal(t, "0px", borders["radius_md"])
	assert.Equal(t, "9999px", borders["radius_full"])
}

func TestEncodeTOML(t *testing.T) {
	b := mustBundle(t, "organic", "#059669")
	out, err := Encode(b, FormatTOML)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(out, &doc))
	assert.Equal(t, "organic", doc["style"])
	colors := doc["colors"].(map[string]any)
	assert.Equal(t, "#059669", colors["primary"])
	breakpoints := doc["breakpoints"].(map[string]any)
	assert.Equal(t, "1536px", breakpoints["2xl"])
}

func TestEncodeCSS(t *testing.T) {
	b := mustBundle(t, "modern", "#2563EB")
	out, err := Encode(b, FormatCSS)
	require.NoError(t, err)
	assert.Equal(t, GenerateCSS(b), string(out))
}

func TestEncodeUnknownFormat(t *testing.T) {
	b := mustBundle(t, "modern", "#2563EB")
	_, err := Encode(b, Format("xml"))
	assert.Error(t, err)
}
