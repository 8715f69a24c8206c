package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIPFilterBlocklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	blocklist := []string{"192.168.1.0/24"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/themes/styles", nil)
	c.Request.RemoteAddr = "192.168.1.100:1234"

	middleware := IPFilterMiddleware(blocklist)
	middleware(c)

	if w.Code != 403 {
		t.Errorf("Expected 403 for blocked IP, got %d", w.Code)
	}
}

func TestIPFilterBlocklistAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	blocklist := []string{"192.168.1.0/24", "not-a-cidr"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/themes/styles", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	middleware := IPFilterMiddleware(blocklist)
	middleware(c)

	if w.Code == 403 {
		t.Error("Expected allowed for non-blocked IP")
	}
}

func TestIPFilterForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	if err := engine.SetTrustedProxies([]string{"10.0.0.0/8"}); err != nil {
		t.Fatalf("SetTrustedProxies: %v", err)
	}
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	c.Request.Header.Set("X-Forwarded-For", "192.168.1.7, 10.0.0.1")

	middleware := IPFilterMiddleware([]string{"192.168.1.0/24"})
	middleware(c)

	if w.Code != 403 {
		t.Errorf("Expected 403 for blocked forwarded IP, got %d", w.Code)
	}
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		remote, forwarded, want string
		proxies                 []string
	}{
		{"10.0.0.1:1234", "", "10.0.0.1", nil},
		{"[::1]:8000", "", "::1", nil},
		{"10.0.0.1", "", "10.0.0.1", nil},
		// Forwarded headers from an untrusted peer are ignored
		{"10.0.0.1:1234", "203.0.113.9", "10.0.0.1", nil},
		{"10.0.0.1:1234", "203.0.113.9", "10.0.0.1", []string{"192.168.0.0/16"}},
		{"10.0.0.1:1234", " 203.0.113.9 , 10.0.0.1", "203.0.113.9", []string{"10.0.0.0/8"}},
	}

	for _, tt := range tests {
		c, engine := gin.CreateTestContext(httptest.NewRecorder())
		if err := engine.SetTrustedProxies(tt.proxies); err != nil {
			t.Fatalf("SetTrustedProxies(%v): %v", tt.proxies, err)
		}
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = tt.remote
		if tt.forwarded != "" {
			c.Request.Header.Set("X-Forwarded-For", tt.forwarded)
		}
		if got := ClientIP(c); got != tt.want {
			t.Errorf("ClientIP(%q, %q) = %q, want %q", tt.remote, tt.forwarded, got, tt.want)
		}
	}
}
