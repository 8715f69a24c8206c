// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RecoveryMiddleware turns panics into a 500 JSON error.
func RecoveryMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error().
			Str("request_id", RequestID(c)).
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("unexpected error")
		AbortWithError(c, http.StatusInternalServerError,
			"Internal Server Error", "An unexpected error occurred", nil)
	})
}
