// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/gin-gonic/gin"
)

// RootHandler describes the API
func (h *Handlers) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "UI Customizer Tool API",
		"version": h.version,
		"health":  "/health",
		"endpoints": gin.H{
			"generate": "/api/v1/themes/generate",
			"styles":   "/api/v1/themes/styles",
			"palettes": "/api/v1/themes/palettes",
			"export":   "/api/v1/export/tokens",
		},
	})
}

// HealthHandler reports service status for monitoring
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"version":     h.version,
		"timestamp":   h.timestamp(),
		"environment": h.environment,
	})
}

// componentCategory groups component types in the catalog.
type componentCategory struct {
	Types       []string `json:"types"`
	Description string   `json:"description"`
}

var componentCatalog = map[string]componentCategory{
	"form_components": {
		Types:       []string{"button", "input", "select", "checkbox", "radio", "toggle"},
		Description: "Interactive form elements with validation states",
	},
	"layout_components": {
		Types:       []string{"card", "modal", "dropdown", "accordion", "tab"},
		Description: "Structural components for content organization",
	},
	"navigation_components": {
		Types:       []string{"navigation", "breadcrumb", "pagination"},
		Description: "Navigation and wayfinding components",
	},
	"data_components": {
		Types:       []string{"table", "list", "avatar", "badge"},
		Description: "Components for displaying data and content",
	},
}

// ComponentTypesHandler lists the component types tokens are designed for
func (h *Handlers) ComponentTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, componentCatalog)
}

// ComponentsHealthHandler reports the component catalog status
func (h *Handlers) ComponentsHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"design_generator": "healthy",
		},
		"timestamp": h.timestamp(),
	})
}

// ExportHealthHandler reports the export service status
func (h *Handlers) ExportHealthHandler(c *gin.Context) {
	formats := make([]string, 0, len(themes.Formats))
	for _, f := range themes.Formats {
		formats = append(formats, string(f))
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"formats":   formats,
		"timestamp": h.timestamp(),
	})
}
