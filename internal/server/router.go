// SPDX-License-Identifier: MIT
package server

import (
	"time"

	"github.com/dbbuilder/ui-customizer/internal/handlers"
	"github.com/dbbuilder/ui-customizer/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Config holds the HTTP-facing settings of the router.
type Config struct {
	AllowedHosts []string
	CORSOrigins  []string
	BlockedCIDRs []string
	RateLimit    int
	RateWindow   time.Duration
	HSTS         bool

	// TrustedProxies lists peers whose X-Forwarded-For is believed.
	// Empty means the direct peer is always the client.
	TrustedProxies []string
}

// Router is the configured gin engine and the resources it owns.
type Router struct {
	*gin.Engine
	limiter *middleware.RateLimiter
}

// Close releases the router's background resources.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Close()
	}
}

// NewRouter wires middleware and routes around the API handlers.
func NewRouter(cfg Config, h *handlers.Handlers, logger zerolog.Logger) *Router {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn().Err(err).Strs("proxies", cfg.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(middleware.RequestLoggerMiddleware(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.HSTS))
	r.Use(middleware.TrustedHostsMiddleware(cfg.AllowedHosts))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	}
	r.Use(middleware.IPFilterMiddleware(cfg.BlockedCIDRs))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.Use(middleware.RateLimitMiddleware(limiter, logger))
	}

	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)

	api := r.Group("/api/v1")
	{
		components := api.Group("/components")
		components.GET("/types", h.ComponentTypesHandler)
		components.GET("/health", h.ComponentsHealthHandler)

		themes := api.Group("/themes")
		themes.POST("/generate", h.GenerateHandler)
		themes.GET("/styles", h.StylesHandler)
		themes.GET("/palettes", h.PalettesHandler)
		themes.GET("/health", h.ThemesHealthHandler)

		export := api.Group("/export")
		export.GET("/tokens", h.ExportTokensHandler)
		export.GET("/health", h.ExportHealthHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, 404, "Not Found", "No route for "+c.Request.Method+" "+c.Request.URL.Path, nil)
	})

	return &Router{Engine: r, limiter: limiter}
}
