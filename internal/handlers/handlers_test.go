// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dbbuilder/ui-customizer/internal/middleware"
	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newTestHandlers() *Handlers {
	h := New(themes.NewService(zerolog.Nop()), zerolog.Nop(), Options{Version: "1.0.0", Environment: "development"})
	h.now = func() time.Time { return time.Date(2024, 12, 23, 10, 0, 0, 0, time.UTC) }
	return h
}

func TestRespondErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"style", &tokens.InvalidStyleError{Style: "x"}, http.StatusUnprocessableEntity},
		{"color", fmt.Errorf("wrapped: %w", &tokens.InvalidColorError{Value: "x", Reason: "bad"}), http.StatusUnprocessableEntity},
		{"preset", fmt.Errorf("%w: %q", themes.ErrUnknownPreset, "plaid"), http.StatusUnprocessableEntity},
		{"syntax", &json.SyntaxError{}, http.StatusBadRequest},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		h.respondError(c, tt.err)

		if w.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, w.Code)
		}
		var body middleware.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON body: %v", tt.name, err)
		}
		if body.Error == "" || body.Message == "" {
			t.Errorf("%s: incomplete error body %+v", tt.name, body)
		}
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	h.respondError(c, errors.New("secret connection string"))

	if got := w.Body.String(); strings.Contains(got, "secret") {
		t.Errorf("internal error leaked: %s", got)
	}
}

func TestHealthTimestamp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandlers()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/health", nil)
	h.HealthHandler(c)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["timestamp"] != "2024-12-23T10:00:00Z" {
		t.Errorf("unexpected timestamp %q", body["timestamp"])
	}
	if body["environment"] != "development" {
		t.Errorf("unexpected environment %q", body["environment"])
	}
}

func TestFieldName(t *testing.T) {
	typ := reflect.TypeOf(struct {
		A string `json:"alpha,omitempty"`
		B string `form:"beta"`
		C string
		D string `json:"-"`
	}{})

	want := []string{"alpha", "beta", "C", ""}
	for i, w := range want {
		if got := fieldName(typ.Field(i)); got != w {
			t.Errorf("field %d: expected %q, got %q", i, w, got)
		}
	}
}
