// SPDX-License-Identifier: MIT
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestLoggerMiddleware tags each request with a fresh ID and logs the
// request and its response.
func RequestLoggerMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		logger.Info().
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("url", c.Request.URL.String()).
			Str("client_ip", ClientIP(c)).
			Msg("request")

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event.
			Str("request_id", id).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("response")
	}
}

// RequestID returns the ID assigned to the request, or "" outside the
// request logger.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
