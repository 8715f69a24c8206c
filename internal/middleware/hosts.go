// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TrustedHostsMiddleware rejects requests whose Host header matches none of
// the allowed patterns. "*.example.com" matches any subdomain of
// example.com, and "*" matches everything.
func TrustedHostsMiddleware(allowed []string) gin.HandlerFunc {
	patterns := make([]string, 0, len(allowed))
	for _, p := range allowed {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			patterns = append(patterns, p)
		}
	}

	return func(c *gin.Context) {
		if len(patterns) == 0 || HostAllowed(c.Request.Host, patterns) {
			c.Next()
			return
		}
		AbortWithError(c, http.StatusBadRequest, "Invalid Host", "Invalid host header", nil)
	}
}

// HostAllowed reports whether host, with any port stripped, matches one of
// the patterns.
func HostAllowed(host string, patterns []string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.Trim(host, "[]"))

	for _, p := range patterns {
		switch {
		case p == "*":
			return true
		case strings.HasPrefix(p, "*."):
			if strings.HasSuffix(host, p[1:]) {
				return true
			}
		case p == host:
			return true
		}
	}
	return false
}
