// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/gin-gonic/gin"
)

// ExportQuery is the query string of GET /api/v1/export/tokens.
type ExportQuery struct {
	Format  string `form:"format" binding:"omitempty,oneof=json yaml yml toml css"`
	Style   string `form:"style" binding:"omitempty,designstyle"`
	Color   string `form:"color" binding:"omitempty,seedcolor"`
	Palette string `form:"palette" binding:"omitempty,palettepreset"`
	Seed    *int64 `form:"seed" binding:"omitempty,gte=0"`
}

// ExportTokensHandler returns a bundle as a downloadable file
func (h *Handlers) ExportTokensHandler(c *gin.Context) {
	var q ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.respondError(c, err)
		return
	}

	format, err := themes.ParseFormat(q.Format)
	if err != nil {
		h.respondError(c, err)
		return
	}

	res, err := h.service.Generate(c.Request.Context(), themes.Request{
		Style:   q.Style,
		Color:   q.Color,
		Palette: q.Palette,
		Seed:    q.Seed,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	body, err := themes.Encode(res.Bundle, format)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("design-tokens-%s.%s", res.Bundle.Style, format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Design-Seed", strconv.FormatInt(res.Seed, 10))
	c.Data(http.StatusOK, format.ContentType(), body)
}
