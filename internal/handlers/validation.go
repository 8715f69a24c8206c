// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/dbbuilder/ui-customizer/internal/themes"
	"github.com/dbbuilder/ui-customizer/internal/tokens"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the design token rules to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("designstyle", func(fl validator.FieldLevel) bool {
			_, err := tokens.ParseStyle(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("seedcolor", func(fl validator.FieldLevel) bool {
			_, err := tokens.ParseColor(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("palettepreset", func(fl validator.FieldLevel) bool {
			_, ok := themes.GetPreset(fl.Field().String())
			return ok
		})
	})
}

// fieldName reports fields by their wire name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "designstyle":
		return fmt.Sprintf("style must be one of: %s", styleNames())
	case "seedcolor":
		return "color must be a hex color like #2563EB"
	case "palettepreset":
		return fmt.Sprintf("palette must be one of: %s", strings.Join(themes.PresetNames(), ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

func styleNames() string {
	names := make([]string, len(tokens.Styles()))
	for i, s := range tokens.Styles() {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// isSyntaxError reports malformed input that never reached validation.
func isSyntaxError(err error) bool {
	var (
		syntax  *json.SyntaxError
		typeErr *json.UnmarshalTypeError
		numErr  *strconv.NumError
	)
	return errors.As(err, &syntax) || errors.As(err, &typeErr) || errors.As(err, &numErr) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
