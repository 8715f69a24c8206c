// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dbbuilder/ui-customizer/internal/middleware"
	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Handlers serves the HTTP API.
type Handlers struct {
	service     *themes.Service
	logger      zerolog.Logger
	version     string
	environment string
	cacheOn     bool
	now         func() time.Time
}

// Options configures Handlers.
type Options struct {
	Version      string
	Environment  string
	CacheEnabled bool
}

// New creates the API handlers around a theme service.
func New(service *themes.Service, logger zerolog.Logger, opts Options) *Handlers {
	RegisterValidators()
	return &Handlers{
		service:     service,
		logger:      logger,
		version:     opts.Version,
		environment: opts.Environment,
		cacheOn:     opts.CacheEnabled,
		now:         time.Now,
	}
}

func (h *Handlers) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

// fieldError is one entry of a validation error's details.
type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// respondError maps an error to the API error body and status code.
func (h *Handlers) respondError(c *gin.Context, err error) {
	var (
		styleErr   *tokens.InvalidStyleError
		colorErr   *tokens.InvalidColorError
		validation validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validation):
		details := make([]fieldError, 0, len(validation))
		for _, fe := range validation {
			details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag(), Message: validationMessage(fe)})
		}
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "Validation Error", "Invalid input parameters", details)
	case errors.As(err, &styleErr), errors.As(err, &colorErr), errors.Is(err, themes.ErrUnknownPreset):
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error(), nil)
	case errors.Is(err, io.EOF), isSyntaxError(err):
		middleware.AbortWithError(c, http.StatusBadRequest, "Bad Request", "Malformed request body", nil)
	default:
		h.logger.Error().Err(err).Str("request_id", middleware.RequestID(c)).Msg("request failed")
		middleware.AbortWithError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", nil)
	}
}
