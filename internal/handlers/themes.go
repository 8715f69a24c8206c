// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/gin-gonic/gin"
)

// GenerateRequest is the body of POST /api/v1/themes/generate. Every
// field is optional.
type GenerateRequest struct {
	Style   string `json:"style" binding:"omitempty,designstyle"`
	Color   string `json:"color" binding:"omitempty,seedcolor"`
	Palette string `json:"palette" binding:"omitempty,palettepreset"`
	Seed    *int64 `json:"seed" binding:"omitempty,gte=0"`
}

// GenerateResponse wraps a generated bundle.
type GenerateResponse struct {
	Success        bool           `json:"success"`
	DesignTokens   *tokens.Bundle `json:"design_tokens"`
	Seed           int64          `json:"seed"`
	Cached         bool           `json:"cached"`
	GenerationTime float64        `json:"generation_time"`
}

// GenerateHandler synthesizes a design token bundle
func (h *Handlers) GenerateHandler(c *gin.Context) {
	var req GenerateRequest
	// An empty body means all defaults
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(c, err)
		return
	}

	res, err := h.service.Generate(c.Request.Context(), themes.Request{
		Style:   req.Style,
		Color:   req.Color,
		Palette: req.Palette,
		Seed:    req.Seed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success:        true,
		DesignTokens:   res.Bundle,
		Seed:           res.Seed,
		Cached:         res.Cached,
		GenerationTime: res.Elapsed.Seconds(),
	})
}

// styleInfo describes one style in the catalog.
type styleInfo struct {
	Name       tokens.Style           `json:"name"`
	Harmony    tokens.Harmony         `json:"harmony"`
	Parameters tokens.StyleParameters `json:"parameters"`
}

// StylesHandler lists the supported styles and their parameters
func (h *Handlers) StylesHandler(c *gin.Context) {
	styles := make([]styleInfo, 0, len(tokens.Styles()))
	for _, s := range tokens.Styles() {
		params, err := tokens.ParametersFor(s)
		if err != nil {
			h.respondError(c, err)
			return
		}
		styles = append(styles, styleInfo{Name: s, Harmony: params.EffectiveHarmony(), Parameters: params})
	}
	c.JSON(http.StatusOK, gin.H{"styles": styles})
}

// PalettesHandler lists the named seed color presets
func (h *Handlers) PalettesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"palettes": themes.ListPresets()})
}

// ThemesHealthHandler reports the theme service status
func (h *Handlers) ThemesHealthHandler(c *gin.Context) {
	cache := "disabled"
	if h.cacheOn {
		cache = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"cache":     cache,
		"timestamp": h.timestamp(),
	})
}
