// SPDX-License-Identifier: MIT
package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// ClientIP extracts the client IP address.
// X-Forwarded-For is only honoured when the direct peer is one of the
// engine's trusted proxies (see gin.Engine.SetTrustedProxies).
func ClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	// RemoteAddr without a port
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
