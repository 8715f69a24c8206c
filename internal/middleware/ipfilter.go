// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware blocks requests from clients in any of the given CIDR
// ranges. Invalid ranges are ignored.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	// Parse blocklist into CIDR ranges
	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, cidr := range blocklist {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err == nil {
			blockedCIDRs = append(blockedCIDRs, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(blockedCIDRs) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(ClientIP(c))
		if clientIP == nil {
			AbortWithError(c, http.StatusForbidden, "Forbidden", "Client address could not be determined", nil)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				AbortWithError(c, http.StatusForbidden, "Forbidden", "Access denied", nil)
				return
			}
		}

		c.Next()
	}
}
