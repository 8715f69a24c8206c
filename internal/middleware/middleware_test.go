// SPDX-License-Identifier: MIT
package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestTrustedHosts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	allowed := []string{"localhost", "127.0.0.1", "*.vercel.app", "*.netlify.app"}
	tests := []struct {
		host string
		want int
	}{
		{"localhost:8000", http.StatusOK},
		{"127.0.0.1", http.StatusOK},
		{"my-app.vercel.app", http.StatusOK},
		{"a.b.netlify.app", http.StatusOK},
		{"vercel.app", http.StatusBadRequest},
		{"evil.com", http.StatusBadRequest},
		{"localhost.evil.com", http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := gin.New()
		r.Use(TrustedHostsMiddleware(allowed))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Host = tt.host
		r.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("host %q: expected %d, got %d", tt.host, tt.want, w.Code)
		}
	}
}

func TestHostAllowedWildcardAll(t *testing.T) {
	if !HostAllowed("anything.example", []string{"*"}) {
		t.Error("* should match every host")
	}
	if !HostAllowed("[::1]:8000", []string{"::1"}) {
		t.Error("IPv6 literal with port should match")
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestLoggerMiddleware(zerolog.New(&logs)))

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected UUID request id, got %q", id)
	}
	if seen != id {
		t.Errorf("handler saw request id %q, header has %q", seen, id)
	}

	dec := json.NewDecoder(&logs)
	var entries []map[string]any
	for dec.More() {
		var e map[string]any
		if err := dec.Decode(&e); err != nil {
			t.Fatalf("invalid log line: %v", err)
		}
		entries = append(entries, e)
	}
	if len(entries) != 2 {
		t.Fatalf("expected request and response log lines, got %d", len(entries))
	}
	if entries[1]["status"] != float64(http.StatusNoContent) {
		t.Errorf("unexpected logged status: %v", entries[1]["status"])
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLoggerMiddleware(zerolog.Nop()), RecoveryMiddleware(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "Internal Server Error" || body.RequestID == "" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, hsts := range []bool{false, true} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		SecurityHeadersMiddleware(hsts)(c)

		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("missing nosniff header")
		}
		if got := w.Header().Get("Strict-Transport-Security") != ""; got != hsts {
			t.Errorf("HSTS present = %v, want %v", got, hsts)
		}
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allowed origin, got %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for disallowed origin, got %d", w.Code)
	}
}
